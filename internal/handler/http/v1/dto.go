package v1

import "time"

// RegisterRequest DTO для регистрации учетной записи
// @Description DTO для регистрации учетной записи
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse DTO для ответа с сессионным токеном
// @Description DTO для ответа с сессионным токеном
type SessionResponse struct {
	Token     string `json:"token"`
	AccountID int64  `json:"account_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// AccountResponse DTO для ответа с данными учетной записи
// @Description DTO для ответа с данными учетной записи
type AccountResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ForgotPasswordRequest DTO для запроса сброса пароля
// @Description DTO для запроса сброса пароля
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest DTO для установки нового пароля
// @Description DTO для установки нового пароля
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Title         string   `json:"title" validate:"required,min=2,max=255"`
	Location      string   `json:"location" validate:"required,min=2,max=255"`
	Description   string   `json:"description,omitempty"`
	Severity      *int     `json:"severity,omitempty" validate:"omitempty,min=1,max=3"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	AttachmentRef *string  `json:"attachment_ref,omitempty"`
}

// SetStateRequest DTO для смены статуса обработки инцидента
// @Description DTO для смены статуса обработки инцидента
type SetStateRequest struct {
	State string `json:"state" validate:"required,oneof=Pending InProgress Resolved"`
}

// AttentionRequest DTO для записи действия оператора по инциденту
// @Description DTO для записи действия оператора по инциденту
type AttentionRequest struct {
	StatusLabel string `json:"status_label" validate:"required,min=2,max=100"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	Description   string    `json:"description,omitempty"`
	Severity      int       `json:"severity"`
	SeverityLabel string    `json:"severity_label"`
	Status        string    `json:"status"`
	AccountID     *int64    `json:"account_id,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	AttachmentRef *string   `json:"attachment_ref,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AttentionResponse DTO для ответа с записью действия оператора
// @Description DTO для ответа с записью действия оператора
type AttentionResponse struct {
	ID             int64     `json:"id"`
	IncidentID     int64     `json:"incident_id"`
	StatusLabel    string    `json:"status_label"`
	AdminAccountID *int64    `json:"admin_account_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// HeatmapPointResponse DTO для одной точки тепловой карты
// @Description DTO для одной точки тепловой карты
type HeatmapPointResponse struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Intensity float64 `json:"intensity"`
	Status    string  `json:"status"`
}

// HeatmapResponse DTO для ответа тепловой карты
// @Description DTO для ответа тепловой карты
type HeatmapResponse struct {
	Points   []HeatmapPointResponse `json:"points"`
	ByStatus map[string]int         `json:"by_status"`
	Count    int                    `json:"count"`
}

// DailyBucketResponse DTO для одного дня серии на панели
// @Description DTO для одного дня серии на панели
type DailyBucketResponse struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
	Tier1 int64  `json:"tier1"`
	Tier2 int64  `json:"tier2"`
	Tier3 int64  `json:"tier3"`
}

// DashboardStatsResponse DTO для ответа операторской панели
// @Description DTO для ответа операторской панели
type DashboardStatsResponse struct {
	Total         int64                 `json:"total"`
	Attended      int64                 `json:"attended"`
	Resolved      int64                 `json:"resolved"`
	Active        int64                 `json:"active"`
	Tier1         int64                 `json:"tier1"`
	Tier2         int64                 `json:"tier2"`
	Tier3         int64                 `json:"tier3"`
	Unclassified  int64                 `json:"unclassified"`
	ResolvedToday int64                 `json:"resolved_today"`
	DailySeries   []DailyBucketResponse `json:"daily_series"`
	GeneratedAt   time.Time             `json:"generated_at"`
}

// SeverityCountResponse DTO для счетчика по уровню серьезности
// @Description DTO для счетчика по уровню серьезности
type SeverityCountResponse struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
}

// DailyCountResponse DTO для счетчика репортов за день
// @Description DTO для счетчика репортов за день
type DailyCountResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// AccountSummaryResponse DTO для сводки аккаунта за окно в 7 дней
// @Description DTO для сводки аккаунта за окно в 7 дней
type AccountSummaryResponse struct {
	SeverityBreakdown []SeverityCountResponse `json:"severity_breakdown"`
	DailySeries       []DailyCountResponse    `json:"daily_series"`
}
