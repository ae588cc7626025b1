package models

import (
	"time"
)

// HeatmapFilter - параметры выборки точек тепловой карты.
// Все фильтры необязательны и комбинируются независимо.
type HeatmapFilter struct {
	Start           *time.Time
	End             *time.Time
	SeverityMin     *Severity
	SeverityMax     *Severity
	States          []string
	BBox            *BoundingBox
	IncludeResolved bool
	Limit           int
}

// BoundingBox - прямоугольная область по координатам (south,west,north,east)
type BoundingBox struct {
	South float64
	West  float64
	North float64
	East  float64
}

// HeatmapSource - сырая точка из хранилища до вычисления интенсивности
type HeatmapSource struct {
	Latitude  float64
	Longitude float64
	Severity  Severity
	Status    string
	CreatedAt time.Time
}

// HeatmapPoint - точка тепловой карты для рендера на клиенте
type HeatmapPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Intensity float64 `json:"intensity"`
	Status    string  `json:"status"`
}

// HeatmapResult - точки плюс гистограмма статусов по возвращенному набору
type HeatmapResult struct {
	Points   []HeatmapPoint `json:"points"`
	ByStatus map[string]int `json:"by_status"`
}

// DailyBucket - счетчики инцидентов за один календарный день
type DailyBucket struct {
	Date   string `json:"date"`
	Total  int64  `json:"total"`
	Tier1  int64  `json:"tier1"`
	Tier2  int64  `json:"tier2"`
	Tier3  int64  `json:"tier3"`
}

// SeverityDayCount - сырая строка агрегата "день x уровень" из хранилища
type SeverityDayCount struct {
	Day      time.Time
	Severity Severity
	Count    int64
}

// DayTotal - сырая строка агрегата "день -> количество" из хранилища
type DayTotal struct {
	Day   time.Time
	Count int64
}

// DashboardStats - снимок счетчиков для операторской панели.
// Attended и Resolved - два разных сигнала "разрешенности":
// первый считает инциденты хотя бы с одной записью внимания,
// второй - прямой статус Resolved.
type DashboardStats struct {
	Total         int64         `json:"total"`
	Attended      int64         `json:"attended"`
	Resolved      int64         `json:"resolved"`
	Active        int64         `json:"active"`
	Tier1         int64         `json:"tier1"`
	Tier2         int64         `json:"tier2"`
	Tier3         int64         `json:"tier3"`
	Unclassified  int64         `json:"unclassified"`
	DailySeries   []DailyBucket `json:"daily_series"`
	ResolvedToday int64         `json:"resolved_today"`
	GeneratedAt   time.Time     `json:"generated_at"`
}

// SeverityCount - количество инцидентов одного уровня серьезности
type SeverityCount struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
}

// DailyCount - количество репортов за один день
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// AccountSummary - сводка по аккаунту за скользящее 7-дневное окно
type AccountSummary struct {
	SeverityBreakdown []SeverityCount `json:"severity_breakdown"`
	DailySeries       []DailyCount    `json:"daily_series"`
}
