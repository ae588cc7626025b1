package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/incident_reporting_system/internal/classifier"
	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/shenikar/incident_reporting_system/internal/mailer"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultHeatmapLimit = 2000
	maxHeatmapLimit     = 5000
	activeWindowDays    = 7
	seriesDays          = 7
)

// IncidentRepository определяет контракт для работы с хранилищем инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.IncidentReport) error
	GetByID(ctx context.Context, id int64) (*models.IncidentReport, error)
	UpdateState(ctx context.Context, id int64, state string) (*models.IncidentReport, error)
	ListByAccount(ctx context.Context, accountID int64) ([]*models.IncidentReport, error)
	AddAttention(ctx context.Context, record *models.AttentionRecord) error

	HeatmapPoints(ctx context.Context, filter models.HeatmapFilter) ([]models.HeatmapSource, error)
	CountIncidents(ctx context.Context) (int64, error)
	CountAttended(ctx context.Context) (int64, error)
	CountByState(ctx context.Context, state string) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	CountBySeverity(ctx context.Context) (map[models.Severity]int64, error)
	CountAttendedSince(ctx context.Context, since time.Time) (int64, error)
	DailySeverityCounts(ctx context.Context, from, to time.Time) ([]models.SeverityDayCount, error)

	LastReportDate(ctx context.Context, accountID int64) (*time.Time, error)
	SeverityBreakdown(ctx context.Context, accountID int64, from, to time.Time) (map[models.Severity]int64, error)
	DailyCountsByAccount(ctx context.Context, accountID int64, from, to time.Time) ([]models.DayTotal, error)

	GetIncidentFromCache(ctx context.Context, id int64) (*models.IncidentReport, error)
	SetIncidentCache(ctx context.Context, incident *models.IncidentReport) error
	InvalidateIncidentCache(ctx context.Context, id int64) error
}

// IncidentService определяет контракт бизнес-логики жизненного цикла инцидентов
type IncidentService interface {
	CreateIncident(ctx context.Context, input models.NewIncident) (*models.IncidentReport, error)
	GetIncident(ctx context.Context, id int64) (*models.IncidentReport, error)
	SetIncidentState(ctx context.Context, id int64, state string) (*models.IncidentReport, error)
	AddAttention(ctx context.Context, incidentID int64, adminAccountID *int64, statusLabel string) (*models.AttentionRecord, error)
	ListAccountReports(ctx context.Context, accountID int64) ([]*models.IncidentReport, error)
	Heatmap(ctx context.Context, filter models.HeatmapFilter) (*models.HeatmapResult, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	AccountSummary(ctx context.Context, accountID int64) (*models.AccountSummary, error)
}

type incidentService struct {
	repo   IncidentRepository
	logger *logrus.Logger
	cfg    *config.Config
	mail   mailer.Publisher
	now    func() time.Time
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, cfg *config.Config, mail mailer.Publisher) IncidentService {
	return &incidentService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
		mail:   mail,
		now:    time.Now,
	}
}

// CreateIncident валидирует входные данные, при отсутствии явного уровня
// классифицирует описание и сохраняет инцидент в статусе Pending
func (s *incidentService) CreateIncident(ctx context.Context, input models.NewIncident) (*models.IncidentReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"title":   input.Title,
	})
	log.Info("Attempting to create a new incident")

	if err := validateNewIncident(input); err != nil {
		log.WithError(err).Warn("Incident input validation failed")
		return nil, err
	}

	severity := models.SeverityUnclassified
	if input.Severity != nil {
		// Явный уровень от клиента всегда имеет приоритет над классификатором
		severity = *input.Severity
	} else {
		severity = classifier.Classify(input.Description)
	}

	incident := &models.IncidentReport{
		Title:         input.Title,
		Location:      input.Location,
		Description:   input.Description,
		Severity:      severity,
		State:         models.StatePending,
		AccountID:     input.AccountID,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		AttachmentRef: input.AttachmentRef,
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	// Уведомление операторам - best-effort, вне критического пути:
	// сбой доставки никогда не откатывает создание инцидента
	s.notifyOperators(ctx, incident)

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return incident, nil
}

func (s *incidentService) notifyOperators(ctx context.Context, incident *models.IncidentReport) {
	if s.mail == nil || s.cfg.OpsEmail == "" {
		return
	}
	event := mailer.MailEvent{
		To:      s.cfg.OpsEmail,
		Subject: fmt.Sprintf("New incident #%d: %s", incident.ID, incident.Title),
		Body: fmt.Sprintf("Severity: %s\nLocation: %s\n\n%s",
			incident.Severity.Label(), incident.Location, incident.Description),
	}
	if err := s.mail.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("incident_id", incident.ID).
			Warn("Failed to enqueue operator notification")
	}
}

func validateNewIncident(input models.NewIncident) error {
	var missing []string
	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.Location == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing fields %v", ErrValidation, missing)
	}

	if input.Severity != nil {
		// Уровень 4 зарезервирован за автоматическим фолбэком
		if *input.Severity < models.SeverityLow || *input.Severity > models.SeverityHigh {
			return fmt.Errorf("%w: severity must be 1, 2 or 3", ErrValidation)
		}
	}

	// Координаты либо заданы парой, либо отсутствуют обе
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be provided together", ErrValidation)
	}
	if input.Latitude != nil {
		if *input.Latitude < -90 || *input.Latitude > 90 {
			return fmt.Errorf("%w: latitude out of range", ErrValidation)
		}
		if *input.Longitude < -180 || *input.Longitude > 180 {
			return fmt.Errorf("%w: longitude out of range", ErrValidation)
		}
	}
	return nil
}

// GetIncident получает инцидент по ID, сначала проверяя кеш
func (s *incidentService) GetIncident(ctx context.Context, id int64) (*models.IncidentReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if cached != nil {
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// SetIncidentState устанавливает статус обработки инцидента.
// Статус операторский, последняя запись выигрывает; единственное жесткое
// правило - значение должно быть одним из трех допустимых.
func (s *incidentService) SetIncidentState(ctx context.Context, id int64, state string) (*models.IncidentReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "SetIncidentState",
		"incident_id": id,
		"state":       state,
	})

	if !models.ValidState(state) {
		log.Warn("Rejected invalid incident state value")
		return nil, fmt.Errorf("%w: %q", ErrInvalidState, state)
	}

	incident, err := s.repo.UpdateState(ctx, id, state)
	if err != nil {
		log.WithError(err).Warn("Failed to update incident state")
		return nil, fmt.Errorf("service: could not update incident state: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident state updated successfully")
	return incident, nil
}

// AddAttention добавляет неизменяемую запись о действии оператора
func (s *incidentService) AddAttention(ctx context.Context, incidentID int64, adminAccountID *int64, statusLabel string) (*models.AttentionRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AddAttention",
		"incident_id": incidentID,
	})

	if statusLabel == "" {
		return nil, fmt.Errorf("%w: status label is required", ErrValidation)
	}

	if _, err := s.repo.GetByID(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Attention record for non-existent incident")
		return nil, fmt.Errorf("service: could not find incident for attention: %w", err)
	}

	record := &models.AttentionRecord{
		IncidentID:     incidentID,
		StatusLabel:    statusLabel,
		AdminAccountID: adminAccountID,
	}
	if err := s.repo.AddAttention(ctx, record); err != nil {
		log.WithError(err).Error("Failed to add attention record")
		return nil, fmt.Errorf("service: could not add attention record: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Attention record added")
	return record, nil
}

// ListAccountReports возвращает репорты аккаунта, новые первыми
func (s *incidentService) ListAccountReports(ctx context.Context, accountID int64) ([]*models.IncidentReport, error) {
	reports, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		s.logger.WithError(err).WithField("account_id", accountID).
			Error("Failed to list account reports")
		return nil, fmt.Errorf("service: could not list account reports: %w", err)
	}
	return reports, nil
}

// Heatmap возвращает ограниченный набор точек для тепловой карты
// с гистограммой статусов по возвращенному набору
func (s *incidentService) Heatmap(ctx context.Context, filter models.HeatmapFilter) (*models.HeatmapResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "Heatmap",
	})

	if filter.Limit <= 0 {
		filter.Limit = defaultHeatmapLimit
	}
	if filter.Limit > maxHeatmapLimit {
		filter.Limit = maxHeatmapLimit
	}
	if filter.SeverityMin != nil && filter.SeverityMax != nil && *filter.SeverityMin > *filter.SeverityMax {
		return nil, fmt.Errorf("%w: severity_min greater than severity_max", ErrValidation)
	}

	sources, err := s.repo.HeatmapPoints(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to query heatmap points")
		return nil, fmt.Errorf("service: could not query heatmap points: %w", err)
	}

	result := &models.HeatmapResult{
		Points:   make([]models.HeatmapPoint, 0, len(sources)),
		ByStatus: make(map[string]int),
	}
	for _, src := range sources {
		result.Points = append(result.Points, models.HeatmapPoint{
			Latitude:  src.Latitude,
			Longitude: src.Longitude,
			Intensity: src.Severity.Intensity(),
			Status:    src.Status,
		})
		result.ByStatus[src.Status]++
	}

	log.WithField("count", len(result.Points)).Info("Heatmap points extracted")
	return result, nil
}

// DashboardStats собирает свежий снимок счетчиков для операторской панели.
// Attended (есть хотя бы одна запись внимания) и Resolved (прямой статус) -
// два разных сигнала, оба отдаются отдельными счетчиками.
func (s *incidentService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "DashboardStats",
	})

	now := s.now()
	today := startOfDay(now)
	from := today.AddDate(0, 0, -(seriesDays - 1))

	stats := &models.DashboardStats{GeneratedAt: now}

	var err error
	if stats.Total, err = s.repo.CountIncidents(ctx); err != nil {
		return nil, s.statsErr(log, "total", err)
	}
	if stats.Attended, err = s.repo.CountAttended(ctx); err != nil {
		return nil, s.statsErr(log, "attended", err)
	}
	if stats.Resolved, err = s.repo.CountByState(ctx, models.StateResolved); err != nil {
		return nil, s.statsErr(log, "resolved", err)
	}
	if stats.Active, err = s.repo.CountCreatedSince(ctx, now.AddDate(0, 0, -activeWindowDays)); err != nil {
		return nil, s.statsErr(log, "active", err)
	}
	if stats.ResolvedToday, err = s.repo.CountAttendedSince(ctx, today); err != nil {
		return nil, s.statsErr(log, "resolved_today", err)
	}

	bySeverity, err := s.repo.CountBySeverity(ctx)
	if err != nil {
		return nil, s.statsErr(log, "by_severity", err)
	}
	stats.Tier1 = bySeverity[models.SeverityLow]
	stats.Tier2 = bySeverity[models.SeverityMedium]
	stats.Tier3 = bySeverity[models.SeverityHigh]
	stats.Unclassified = bySeverity[models.SeverityUnclassified]

	rows, err := s.repo.DailySeverityCounts(ctx, from, today)
	if err != nil {
		return nil, s.statsErr(log, "daily_series", err)
	}
	stats.DailySeries = buildDailySeries(from, rows)

	log.Info("Dashboard stats computed")
	return stats, nil
}

func (s *incidentService) statsErr(log *logrus.Entry, counter string, err error) error {
	log.WithError(err).WithField("counter", counter).Error("Failed to compute dashboard counter")
	return fmt.Errorf("service: could not compute dashboard stats: %w", err)
}

// AccountSummary строит сводку аккаунта за 7-дневное окно.
// Конец окна - максимум из сегодняшней даты и даты последнего репорта,
// поэтому аккаунт со старыми репортами видит окно вокруг них, а не пустое
func (s *incidentService) AccountSummary(ctx context.Context, accountID int64) (*models.AccountSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "incident",
		"method":     "AccountSummary",
		"account_id": accountID,
	})

	today := startOfDay(s.now())

	last, err := s.repo.LastReportDate(ctx, accountID)
	if err != nil {
		log.WithError(err).Error("Failed to get last report date")
		return nil, fmt.Errorf("service: could not build account summary: %w", err)
	}

	end := today
	if last != nil {
		if d := startOfDay(*last); d.After(end) {
			end = d
		}
	}
	from := end.AddDate(0, 0, -(seriesDays - 1))

	breakdown, err := s.repo.SeverityBreakdown(ctx, accountID, from, end)
	if err != nil {
		log.WithError(err).Error("Failed to get severity breakdown")
		return nil, fmt.Errorf("service: could not build account summary: %w", err)
	}

	rows, err := s.repo.DailyCountsByAccount(ctx, accountID, from, end)
	if err != nil {
		log.WithError(err).Error("Failed to get daily counts")
		return nil, fmt.Errorf("service: could not build account summary: %w", err)
	}

	summary := &models.AccountSummary{
		SeverityBreakdown: buildSeverityBreakdown(breakdown),
		DailySeries:       buildAccountSeries(from, rows),
	}

	log.Info("Account summary computed")
	return summary, nil
}

// startOfDay обрезает время до начала календарного дня в локальной зоне
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// buildDailySeries разворачивает сырые агрегаты "день x уровень" в плотную
// серию ровно из 7 записей, дни без инцидентов заполняются нулями
func buildDailySeries(from time.Time, rows []models.SeverityDayCount) []models.DailyBucket {
	byDay := make(map[string]*models.DailyBucket, seriesDays)
	series := make([]models.DailyBucket, seriesDays)
	for i := 0; i < seriesDays; i++ {
		date := from.AddDate(0, 0, i).Format("2006-01-02")
		series[i] = models.DailyBucket{Date: date}
		byDay[date] = &series[i]
	}

	for _, row := range rows {
		bucket, ok := byDay[row.Day.Format("2006-01-02")]
		if !ok {
			continue
		}
		bucket.Total += row.Count
		switch row.Severity {
		case models.SeverityLow:
			bucket.Tier1 += row.Count
		case models.SeverityMedium:
			bucket.Tier2 += row.Count
		case models.SeverityHigh:
			bucket.Tier3 += row.Count
		}
	}
	return series
}

// buildAccountSeries заполняет нулями дни без репортов
func buildAccountSeries(from time.Time, rows []models.DayTotal) []models.DailyCount {
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Day.Format("2006-01-02")] = row.Count
	}

	series := make([]models.DailyCount, seriesDays)
	for i := 0; i < seriesDays; i++ {
		date := from.AddDate(0, 0, i).Format("2006-01-02")
		series[i] = models.DailyCount{Date: date, Count: counts[date]}
	}
	return series
}

// buildSeverityBreakdown переводит счетчики по уровням в устойчивый порядок
func buildSeverityBreakdown(counts map[models.Severity]int64) []models.SeverityCount {
	order := []models.Severity{
		models.SeverityLow,
		models.SeverityMedium,
		models.SeverityHigh,
		models.SeverityUnclassified,
	}
	breakdown := make([]models.SeverityCount, 0, len(order))
	for _, sev := range order {
		if total, ok := counts[sev]; ok && total > 0 {
			breakdown = append(breakdown, models.SeverityCount{Label: sev.Label(), Total: total})
		}
	}
	return breakdown
}
