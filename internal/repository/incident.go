package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
)

// presentedStatus - SQL-выражение статуса для путей чтения: прямой статус,
// иначе метка последней записи внимания, иначе Pending. Фолбэк только
// для чтения и никогда не пишется обратно в колонку state.
const presentedStatus = `COALESCE(
		NULLIF(i.state, ''),
		(SELECT a.status_label FROM attention_records a
		 WHERE a.incident_id = i.id
		 ORDER BY a.created_at DESC, a.id DESC
		 LIMIT 1),
		'Pending')`

const incidentColumns = `
		i.id,
		i.title,
		i.location,
		COALESCE(i.description, '') AS description,
		i.severity,
		` + presentedStatus + ` AS state,
		i.account_id,
		i.latitude,
		i.longitude,
		i.attachment_ref,
		i.created_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.IncidentReport) error {
	query := `
		INSERT INTO incidents (title, location, description, severity, state, account_id, latitude, longitude, attachment_ref)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Title,
		incident.Location,
		incident.Description,
		incident.Severity,
		incident.State,
		incident.AccountID,
		incident.Latitude,
		incident.Longitude,
		incident.AttachmentRef,
	).Scan(&incident.ID, &incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

func scanIncident(row pgx.Row) (*models.IncidentReport, error) {
	incident := &models.IncidentReport{}
	err := row.Scan(
		&incident.ID,
		&incident.Title,
		&incident.Location,
		&incident.Description,
		&incident.Severity,
		&incident.State,
		&incident.AccountID,
		&incident.Latitude,
		&incident.Longitude,
		&incident.AttachmentRef,
		&incident.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// GetByID возвращает инцидент с вычисленным статусом для показа
func (r *IncidentRepository) GetByID(ctx context.Context, id int64) (*models.IncidentReport, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents i WHERE i.id = $1;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// UpdateState атомарно устанавливает статус обработки одной строкой.
// Частично обновленное состояние не видно конкурентным читателям.
func (r *IncidentRepository) UpdateState(ctx context.Context, id int64, state string) (*models.IncidentReport, error) {
	query := `
		UPDATE incidents SET state = $1 WHERE id = $2
		RETURNING id, title, location, COALESCE(description, ''), severity, state, account_id, latitude, longitude, attachment_ref, created_at;
	`
	incident := &models.IncidentReport{}
	err := r.db.QueryRow(ctx, query, state, id).Scan(
		&incident.ID,
		&incident.Title,
		&incident.Location,
		&incident.Description,
		&incident.Severity,
		&incident.State,
		&incident.AccountID,
		&incident.Latitude,
		&incident.Longitude,
		&incident.AttachmentRef,
		&incident.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update incident state: %w", err)
	}
	return incident, nil
}

// ListByAccount возвращает репорты аккаунта, новые первыми
func (r *IncidentRepository) ListByAccount(ctx context.Context, accountID int64) ([]*models.IncidentReport, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents i WHERE i.account_id = $1 ORDER BY i.created_at DESC;`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list account incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.IncidentReport, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// AddAttention добавляет запись внимания; записи только добавляются и не мутируются
func (r *IncidentRepository) AddAttention(ctx context.Context, record *models.AttentionRecord) error {
	query := `
		INSERT INTO attention_records (incident_id, status_label, admin_account_id)
		VALUES ($1, $2, $3) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		record.IncidentID,
		record.StatusLabel,
		record.AdminAccountID,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add attention record: %w", err)
	}
	return nil
}

// HeatmapPoints возвращает точки для тепловой карты. Учитываются только
// записи с обеими координатами; фильтры комбинируются независимо,
// сортировка по убыванию времени создания, затем применяется лимит.
func (r *IncidentRepository) HeatmapPoints(ctx context.Context, filter models.HeatmapFilter) ([]models.HeatmapSource, error) {
	var (
		inner strings.Builder
		args  []any
	)

	inner.WriteString(`
		SELECT i.latitude, i.longitude, i.severity, ` + presentedStatus + ` AS status, i.created_at
		FROM incidents i
		WHERE i.latitude IS NOT NULL AND i.longitude IS NOT NULL`)

	addCond := func(cond string, value any) {
		args = append(args, value)
		inner.WriteString(fmt.Sprintf(" AND "+cond, len(args)))
	}

	if filter.Start != nil {
		addCond("i.created_at >= $%d", *filter.Start)
	}
	if filter.End != nil {
		addCond("i.created_at <= $%d", *filter.End)
	}
	if filter.SeverityMin != nil {
		addCond("i.severity >= $%d", *filter.SeverityMin)
	}
	if filter.SeverityMax != nil {
		addCond("i.severity <= $%d", *filter.SeverityMax)
	}
	if filter.BBox != nil {
		addCond("i.latitude >= $%d", filter.BBox.South)
		addCond("i.latitude <= $%d", filter.BBox.North)
		addCond("i.longitude >= $%d", filter.BBox.West)
		addCond("i.longitude <= $%d", filter.BBox.East)
	}

	var outer strings.Builder
	outer.WriteString("SELECT latitude, longitude, severity, status, created_at FROM (")
	outer.WriteString(inner.String())
	outer.WriteString(") AS p WHERE TRUE")

	if !filter.IncludeResolved {
		// Разрешенные инциденты не попадают на живую карту без явного запроса
		outer.WriteString(" AND status <> '" + models.StateResolved + "'")
	}
	if len(filter.States) > 0 {
		args = append(args, filter.States)
		outer.WriteString(fmt.Sprintf(" AND status = ANY($%d)", len(args)))
	}

	args = append(args, filter.Limit)
	outer.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d;", len(args)))

	rows, err := r.db.Query(ctx, outer.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query heatmap points: %w", err)
	}
	defer rows.Close()

	points := make([]models.HeatmapSource, 0)
	for rows.Next() {
		var p models.HeatmapSource
		if err := rows.Scan(&p.Latitude, &p.Longitude, &p.Severity, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan heatmap row: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error heatmap iteration: %w", err)
	}
	return points, nil
}

func (r *IncidentRepository) countQuery(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountIncidents возвращает общее количество инцидентов
func (r *IncidentRepository) CountIncidents(ctx context.Context) (int64, error) {
	count, err := r.countQuery(ctx, `SELECT COUNT(*) FROM incidents;`)
	if err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return count, nil
}

// CountAttended возвращает количество инцидентов хотя бы с одной записью внимания
func (r *IncidentRepository) CountAttended(ctx context.Context) (int64, error) {
	count, err := r.countQuery(ctx, `SELECT COUNT(DISTINCT incident_id) FROM attention_records;`)
	if err != nil {
		return 0, fmt.Errorf("failed to count attended incidents: %w", err)
	}
	return count, nil
}

// CountByState возвращает количество инцидентов с заданным прямым статусом
func (r *IncidentRepository) CountByState(ctx context.Context, state string) (int64, error) {
	count, err := r.countQuery(ctx, `SELECT COUNT(*) FROM incidents WHERE state = $1;`, state)
	if err != nil {
		return 0, fmt.Errorf("failed to count incidents by state: %w", err)
	}
	return count, nil
}

// CountCreatedSince возвращает количество инцидентов, созданных после since
func (r *IncidentRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	count, err := r.countQuery(ctx, `SELECT COUNT(*) FROM incidents WHERE created_at >= $1;`, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent incidents: %w", err)
	}
	return count, nil
}

// CountAttendedSince возвращает количество инцидентов, по которым было
// действие оператора начиная с since
func (r *IncidentRepository) CountAttendedSince(ctx context.Context, since time.Time) (int64, error) {
	count, err := r.countQuery(ctx,
		`SELECT COUNT(DISTINCT incident_id) FROM attention_records WHERE created_at >= $1;`, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count recently attended incidents: %w", err)
	}
	return count, nil
}

// CountBySeverity возвращает количество инцидентов по каждому уровню серьезности
func (r *IncidentRepository) CountBySeverity(ctx context.Context) (map[models.Severity]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT severity, COUNT(*) FROM incidents GROUP BY severity;`)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents by severity: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Severity]int64)
	for rows.Next() {
		var (
			severity models.Severity
			count    int64
		)
		if err := rows.Scan(&severity, &count); err != nil {
			return nil, fmt.Errorf("failed to scan severity count row: %w", err)
		}
		counts[severity] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error severity count iteration: %w", err)
	}
	return counts, nil
}

// DailySeverityCounts возвращает агрегаты "календарный день x уровень"
// в диапазоне дат [from, to] включительно
func (r *IncidentRepository) DailySeverityCounts(ctx context.Context, from, to time.Time) ([]models.SeverityDayCount, error) {
	query := `
		SELECT created_at::date AS day, severity, COUNT(*)
		FROM incidents
		WHERE created_at::date >= $1::date AND created_at::date <= $2::date
		GROUP BY day, severity
		ORDER BY day;
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily severity counts: %w", err)
	}
	defer rows.Close()

	counts := make([]models.SeverityDayCount, 0)
	for rows.Next() {
		var row models.SeverityDayCount
		if err := rows.Scan(&row.Day, &row.Severity, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan daily severity row: %w", err)
		}
		counts = append(counts, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error daily severity iteration: %w", err)
	}
	return counts, nil
}

// LastReportDate возвращает время последнего репорта аккаунта или nil
func (r *IncidentRepository) LastReportDate(ctx context.Context, accountID int64) (*time.Time, error) {
	var last *time.Time
	err := r.db.QueryRow(ctx,
		`SELECT MAX(created_at) FROM incidents WHERE account_id = $1;`, accountID).Scan(&last)
	if err != nil {
		return nil, fmt.Errorf("failed to get last report date: %w", err)
	}
	return last, nil
}

// SeverityBreakdown возвращает счетчики по уровням для аккаунта в окне дат
func (r *IncidentRepository) SeverityBreakdown(ctx context.Context, accountID int64, from, to time.Time) (map[models.Severity]int64, error) {
	query := `
		SELECT severity, COUNT(*)
		FROM incidents
		WHERE account_id = $1 AND created_at::date >= $2::date AND created_at::date <= $3::date
		GROUP BY severity;
	`
	rows, err := r.db.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query severity breakdown: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Severity]int64)
	for rows.Next() {
		var (
			severity models.Severity
			count    int64
		)
		if err := rows.Scan(&severity, &count); err != nil {
			return nil, fmt.Errorf("failed to scan breakdown row: %w", err)
		}
		counts[severity] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error breakdown iteration: %w", err)
	}
	return counts, nil
}

// DailyCountsByAccount возвращает количество репортов аккаунта по дням в окне дат
func (r *IncidentRepository) DailyCountsByAccount(ctx context.Context, accountID int64, from, to time.Time) ([]models.DayTotal, error) {
	query := `
		SELECT created_at::date AS day, COUNT(*)
		FROM incidents
		WHERE account_id = $1 AND created_at::date >= $2::date AND created_at::date <= $3::date
		GROUP BY day
		ORDER BY day;
	`
	rows, err := r.db.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily account counts: %w", err)
	}
	defer rows.Close()

	counts := make([]models.DayTotal, 0)
	for rows.Next() {
		var row models.DayTotal
		if err := rows.Scan(&row.Day, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan daily account row: %w", err)
		}
		counts = append(counts, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error daily account iteration: %w", err)
	}
	return counts, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id int64) (*models.IncidentReport, error) {
	key := fmt.Sprintf("incident:%d", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.IncidentReport{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.IncidentReport) error {
	key := fmt.Sprintf("incident:%d", incident.ID)
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	// Срок жизни кэша 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id int64) error {
	key := fmt.Sprintf("incident:%d", id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
