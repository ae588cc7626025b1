package models

import (
	"time"
)

// Severity - уровень серьезности инцидента (1..4)
type Severity int

const (
	SeverityLow          Severity = 1
	SeverityMedium       Severity = 2
	SeverityHigh         Severity = 3
	SeverityUnclassified Severity = 4
)

// severityLabels - статическая таблица меток, загружается один раз и не мутируется
var severityLabels = map[Severity]string{
	SeverityLow:          "Low",
	SeverityMedium:       "Medium",
	SeverityHigh:         "High",
	SeverityUnclassified: "Unclassified",
}

// Valid сообщает, входит ли значение в допустимый диапазон уровней
func (s Severity) Valid() bool {
	_, ok := severityLabels[s]
	return ok
}

// Label возвращает человекочитаемую метку уровня серьезности
func (s Severity) Label() string {
	if label, ok := severityLabels[s]; ok {
		return label
	}
	return severityLabels[SeverityUnclassified]
}

// Intensity возвращает интенсивность точки тепловой карты.
// Неклассифицированные инциденты намеренно получают максимум,
// чтобы неразобранные репорты были заметны на карте.
func (s Severity) Intensity() float64 {
	switch s {
	case SeverityLow:
		return 0.33
	case SeverityMedium:
		return 0.66
	default:
		return 1.0
	}
}

// Статусы обработки инцидента
const (
	StatePending    = "Pending"
	StateInProgress = "InProgress"
	StateResolved   = "Resolved"
)

// ValidState сообщает, является ли значение допустимым статусом обработки
func ValidState(state string) bool {
	switch state {
	case StatePending, StateInProgress, StateResolved:
		return true
	}
	return false
}

// IncidentReport - репорт об инциденте, отправленный жителем
type IncidentReport struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	Severity      Severity  `json:"severity"`
	State         string    `json:"state"`
	AccountID     *int64    `json:"account_id,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	AttachmentRef *string   `json:"attachment_ref,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AttentionRecord - неизменяемая запись о действии оператора над инцидентом
type AttentionRecord struct {
	ID             int64     `json:"id"`
	IncidentID     int64     `json:"incident_id"`
	StatusLabel    string    `json:"status_label"`
	AdminAccountID *int64    `json:"admin_account_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewIncident - входные данные для регистрации инцидента
type NewIncident struct {
	Title         string
	Location      string
	Description   string
	Severity      *Severity // явный уровень от клиента, имеет приоритет над классификатором
	Latitude      *float64
	Longitude     *float64
	AttachmentRef *string
	AccountID     *int64
}
