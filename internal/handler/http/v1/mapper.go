package v1

import "github.com/shenikar/incident_reporting_system/internal/models"

// DTOToNewIncident преобразует DTO создания в доменный вход
func DTOToNewIncident(dto CreateIncidentRequest, accountID *int64) models.NewIncident {
	input := models.NewIncident{
		Title:         dto.Title,
		Location:      dto.Location,
		Description:   dto.Description,
		AccountID:     accountID,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		AttachmentRef: dto.AttachmentRef,
	}
	if dto.Severity != nil {
		sev := models.Severity(*dto.Severity)
		input.Severity = &sev
	}
	return input
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.IncidentReport) *IncidentResponse {
	return &IncidentResponse{
		ID:            model.ID,
		Title:         model.Title,
		Location:      model.Location,
		Description:   model.Description,
		Severity:      int(model.Severity),
		SeverityLabel: model.Severity.Label(),
		Status:        model.State,
		AccountID:     model.AccountID,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		AttachmentRef: model.AttachmentRef,
		CreatedAt:     model.CreatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.IncidentReport) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToAttentionResponse преобразует запись внимания в DTO для ответа
func ModelToAttentionResponse(model *models.AttentionRecord) *AttentionResponse {
	return &AttentionResponse{
		ID:             model.ID,
		IncidentID:     model.IncidentID,
		StatusLabel:    model.StatusLabel,
		AdminAccountID: model.AdminAccountID,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelToSessionResponse преобразует сессию в DTO для ответа
func ModelToSessionResponse(session *models.Session) *SessionResponse {
	return &SessionResponse{
		Token:     session.Token,
		AccountID: session.AccountID,
		Username:  session.Username,
		Email:     session.Email,
		Role:      session.Role,
	}
}

// ModelToAccountResponse преобразует учетную запись и роль в DTO для ответа
func ModelToAccountResponse(account *models.Account, role string) *AccountResponse {
	return &AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      role,
		CreatedAt: account.CreatedAt,
	}
}

// ModelToHeatmapResponse преобразует результат тепловой карты в DTO
func ModelToHeatmapResponse(result *models.HeatmapResult) *HeatmapResponse {
	points := make([]HeatmapPointResponse, len(result.Points))
	for i, p := range result.Points {
		points[i] = HeatmapPointResponse{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Intensity: p.Intensity,
			Status:    p.Status,
		}
	}
	return &HeatmapResponse{
		Points:   points,
		ByStatus: result.ByStatus,
		Count:    len(points),
	}
}

// ModelToDashboardResponse преобразует снимок панели в DTO
func ModelToDashboardResponse(stats *models.DashboardStats) *DashboardStatsResponse {
	series := make([]DailyBucketResponse, len(stats.DailySeries))
	for i, b := range stats.DailySeries {
		series[i] = DailyBucketResponse{
			Date:  b.Date,
			Total: b.Total,
			Tier1: b.Tier1,
			Tier2: b.Tier2,
			Tier3: b.Tier3,
		}
	}
	return &DashboardStatsResponse{
		Total:         stats.Total,
		Attended:      stats.Attended,
		Resolved:      stats.Resolved,
		Active:        stats.Active,
		Tier1:         stats.Tier1,
		Tier2:         stats.Tier2,
		Tier3:         stats.Tier3,
		Unclassified:  stats.Unclassified,
		ResolvedToday: stats.ResolvedToday,
		DailySeries:   series,
		GeneratedAt:   stats.GeneratedAt,
	}
}

// ModelToSummaryResponse преобразует сводку аккаунта в DTO
func ModelToSummaryResponse(summary *models.AccountSummary) *AccountSummaryResponse {
	breakdown := make([]SeverityCountResponse, len(summary.SeverityBreakdown))
	for i, s := range summary.SeverityBreakdown {
		breakdown[i] = SeverityCountResponse{Label: s.Label, Total: s.Total}
	}
	series := make([]DailyCountResponse, len(summary.DailySeries))
	for i, d := range summary.DailySeries {
		series[i] = DailyCountResponse{Date: d.Date, Count: d.Count}
	}
	return &AccountSummaryResponse{
		SeverityBreakdown: breakdown,
		DailySeries:       series,
	}
}
