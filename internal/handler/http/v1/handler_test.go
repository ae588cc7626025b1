package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/shenikar/incident_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *mocks.MockAuthService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockIncidents := mocks.NewMockIncidentService(ctrl)
	mockAuth := mocks.NewMockAuthService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		JWTSecret: "test-secret",
	}

	handler := NewHandler(mockIncidents, mockAuth, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockIncidents, mockAuth, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func adminHeader() map[string]string {
	return map[string]string{"Authorization": "Bearer admin-token"}
}

func userHeader() map[string]string {
	return map[string]string{"Authorization": "Bearer user-token"}
}

func expectAdminToken(mockAuth *mocks.MockAuthService) {
	mockAuth.EXPECT().
		ParseToken("admin-token").
		Return(&models.Claims{AccountID: 1, Username: "operator", Role: models.RoleAdmin}, nil).
		AnyTimes()
}

func expectUserToken(mockAuth *mocks.MockAuthService) {
	mockAuth.EXPECT().
		ParseToken("user-token").
		Return(&models.Claims{AccountID: 2, Username: "citizen", Email: "citizen@example.com", Role: models.RoleUser}, nil).
		AnyTimes()
}

func TestCreateIncident_Anonymous(t *testing.T) {
	_, mockIncidents, _, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Title:       "Robbery report",
		Location:    "Main square",
		Description: "robbery in progress",
	}
	expected := &models.IncidentReport{
		ID:        10,
		Title:     reqBody.Title,
		Location:  reqBody.Location,
		Severity:  models.SeverityHigh,
		State:     models.StatePending,
		CreatedAt: time.Now(),
	}

	mockIncidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input models.NewIncident) (*models.IncidentReport, error) {
			// Анонимный репорт не привязан к аккаунту
			assert.Nil(t, input.AccountID)
			return expected, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "High", resp.SeverityLabel)
	assert.Equal(t, models.StatePending, resp.Status)
}

func TestCreateIncident_AttributedToAccount(t *testing.T) {
	_, mockIncidents, mockAuth, router := newTestHandler(t)
	expectUserToken(mockAuth)

	mockIncidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input models.NewIncident) (*models.IncidentReport, error) {
			require.NotNil(t, input.AccountID)
			assert.Equal(t, int64(2), *input.AccountID)
			return &models.IncidentReport{ID: 11}, nil
		}).Times(1)

	reqBody := CreateIncidentRequest{Title: "Lost pet", Location: "Park"}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), userHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, mockIncidents, _, router := newTestHandler(t)

	mockIncidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"title": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, mockIncidents, _, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{ // Отсутствует Location
		Title: "Test",
	}

	mockIncidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIncident_Success(t *testing.T) {
	_, mockIncidents, _, router := newTestHandler(t)
	expected := &models.IncidentReport{
		ID:       5,
		Title:    "Vandalism",
		Location: "Bus stop",
		Severity: models.SeverityLow,
		State:    models.StateInProgress,
	}

	mockIncidents.EXPECT().
		GetIncident(gomock.Any(), int64(5)).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/5", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Low", resp.SeverityLabel)
	assert.Equal(t, models.StateInProgress, resp.Status)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, mockIncidents, _, router := newTestHandler(t)

	mockIncidents.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockIncidents, _, router := newTestHandler(t)

	mockIncidents.EXPECT().
		GetIncident(gomock.Any(), int64(404)).
		Return(nil, service.ErrNotFound).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetIncidentState_AdminSuccess(t *testing.T) {
	_, mockIncidents, mockAuth, router := newTestHandler(t)
	expectAdminToken(mockAuth)

	mockIncidents.EXPECT().
		SetIncidentState(gomock.Any(), int64(5), models.StateResolved).
		Return(&models.IncidentReport{ID: 5, State: models.StateResolved}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(SetStateRequest{State: models.StateResolved})
	w := makeRequest(router, "PATCH", "/api/v1/incidents/5/state", bytes.NewBuffer(bodyBytes), adminHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetIncidentState_NonAdminForbidden(t *testing.T) {
	_, mockIncidents, mockAuth, router := newTestHandler(t)
	expectUserToken(mockAuth)

	mockIncidents.EXPECT().SetIncidentState(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(SetStateRequest{State: models.StateResolved})
	w := makeRequest(router, "PATCH", "/api/v1/incidents/5/state", bytes.NewBuffer(bodyBytes), userHeader())

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSetIncidentState_NoToken(t *testing.T) {
	_, mockIncidents, _, router := newTestHandler(t)

	mockIncidents.EXPECT().SetIncidentState(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(SetStateRequest{State: models.StateResolved})
	w := makeRequest(router, "PATCH", "/api/v1/incidents/5/state", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetIncidentState_InvalidValue(t *testing.T) {
	_, mockIncidents, mockAuth, router := newTestHandler(t)
	expectAdminToken(mockAuth)

	mockIncidents.EXPECT().SetIncidentState(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(SetStateRequest{State: "Closed"})
	w := makeRequest(router, "PATCH", "/api/v1/incidents/5/state", bytes.NewBuffer(bodyBytes), adminHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddAttention_AdminSuccess(t *testing.T) {
	_, mockIncidents, mockAuth, router := newTestHandler(t)
	expectAdminToken(mockAuth)

	mockIncidents.EXPECT().
		AddAttention(gomock.Any(), int64(7), gomock.Any(), "Patrol dispatched").
		DoAndReturn(func(_ any, incidentID int64, adminID *int64, label string) (*models.AttentionRecord, error) {
			require.NotNil(t, adminID)
			assert.Equal(t, int64(1), *adminID)
			return &models.AttentionRecord{
				ID:             1,
				IncidentID:     incidentID,
				StatusLabel:    label,
				AdminAccountID: adminID,
				CreatedAt:      time.Now(),
			}, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(AttentionRequest{StatusLabel: "Patrol dispatched"})
	w := makeRequest(router, "POST", "/api/v1/incidents/7/attention", bytes.NewBuffer(bodyBytes), adminHeader())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AttentionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.IncidentID)
	assert.Equal(t, "Patrol dispatched", resp.StatusLabel)
}

func TestHeatmap_Success(t *testing.T) {
	_, mockIncidents, mockAuth, router := newTestHandler(t)
	expectAdminToken(mockAuth)

	mockIncidents.EXPECT().
		Heatmap(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter models.HeatmapFilter) (*models.HeatmapResult, error) {
			require.NotNil(t, filter.BBox)
			assert.Equal(t, -10.0, filter.BBox.South)
			assert.Equal(t, 20.0, filter.BBox.North)
			assert.Equal(t, 100, filter.Limit)
			assert.True(t, filter.IncludeResolved)
			return &models.HeatmapResult{
				Points: []models.HeatmapPoint{
					{Latitude: 1, Longitude: 2, Intensity: 0.66, Status: models.StatePending},
				},
				ByStatus: map[string]int{models.StatePending: 1},
			}, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/heatmap?bbox=-10,-20,20,30&limit=100&include_resolved=true", nil, adminHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HeatmapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.InDelta(t, 0.66, resp.Points[0].Intensity, 0.001)
}

func TestHeatmap_InvalidBBox(t *testing.T) {
	_, mockIncidents, mockAuth, router := newTestHandler(t)
	expectAdminToken(mockAuth)

	mockIncidents.EXPECT().Heatmap(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/heatmap?bbox=1,2,3", nil, adminHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHeatmap_InvalidSeverity(t *testing.T) {
	_, mockIncidents, mockAuth, router := newTestHandler(t)
	expectAdminToken(mockAuth)

	mockIncidents.EXPECT().Heatmap(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/heatmap?severity_min=9", nil, adminHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHeatmap_NonAdminForbidden(t *testing.T) {
	_, mockIncidents, mockAuth, router := newTestHandler(t)
	expectUserToken(mockAuth)

	mockIncidents.EXPECT().Heatmap(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/heatmap", nil, userHeader())

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDashboardStats_AdminOnly(t *testing.T) {
	_, mockIncidents, mockAuth, router := newTestHandler(t)
	expectAdminToken(mockAuth)

	mockIncidents.EXPECT().
		DashboardStats(gomock.Any()).
		Return(&models.DashboardStats{
			Total:    10,
			Attended: 4,
			Resolved: 2,
			DailySeries: []models.DailyBucket{
				{Date: "2025-06-10", Total: 3, Tier3: 2, Tier1: 1},
			},
			GeneratedAt: time.Now(),
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard/stats", nil, adminHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DashboardStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.Total)
	assert.Equal(t, int64(4), resp.Attended)
	require.Len(t, resp.DailySeries, 1)
	assert.Equal(t, int64(2), resp.DailySeries[0].Tier3)
}

func TestDashboardStats_NonAdminForbidden(t *testing.T) {
	_, mockIncidents, mockAuth, router := newTestHandler(t)
	expectUserToken(mockAuth)

	mockIncidents.EXPECT().DashboardStats(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/dashboard/stats", nil, userHeader())

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegister_Handler_Success(t *testing.T) {
	_, _, mockAuth, router := newTestHandler(t)

	mockAuth.EXPECT().
		Register(gomock.Any(), "citizen1", "c1@example.com", "secret123").
		Return(&models.Account{ID: 1, Name: "citizen1", Email: "c1@example.com", CreatedAt: time.Now()}, nil).
		Times(1)
	mockAuth.EXPECT().
		ResolveRole(gomock.Any(), int64(1)).
		Return(models.RoleUser, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(RegisterRequest{Name: "citizen1", Email: "c1@example.com", Password: "secret123"})
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.RoleUser, resp.Role)
}

func TestRegister_Handler_Duplicate(t *testing.T) {
	_, _, mockAuth, router := newTestHandler(t)

	mockAuth.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, service.ErrDuplicateAccount).
		Times(1)

	bodyBytes, _ := json.Marshal(RegisterRequest{Name: "citizen1", Email: "c1@example.com", Password: "secret123"})
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_Handler_Success(t *testing.T) {
	_, _, mockAuth, router := newTestHandler(t)

	mockAuth.EXPECT().
		Login(gomock.Any(), "citizen1", "secret123").
		Return(&models.Session{
			Token:     "session-token",
			AccountID: 1,
			Username:  "citizen1",
			Role:      models.RoleUser,
		}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(LoginRequest{Name: "citizen1", Password: "secret123"})
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "session-token", resp.Token)
	assert.Equal(t, models.RoleUser, resp.Role)
}

func TestLogin_Handler_BadCredentials(t *testing.T) {
	_, _, mockAuth, router := newTestHandler(t)

	mockAuth.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, service.ErrInvalidCredentials).
		Times(1)

	bodyBytes, _ := json.Marshal(LoginRequest{Name: "citizen1", Password: "wrong"})
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_Success(t *testing.T) {
	_, _, mockAuth, router := newTestHandler(t)
	expectUserToken(mockAuth)

	w := makeRequest(router, "GET", "/api/v1/me", nil, userHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.AccountID)
	assert.Equal(t, "citizen", resp.Username)
}

func TestMe_NoToken(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/me", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMyReports_Success(t *testing.T) {
	_, mockIncidents, mockAuth, router := newTestHandler(t)
	expectUserToken(mockAuth)

	mockIncidents.EXPECT().
		ListAccountReports(gomock.Any(), int64(2)).
		Return([]*models.IncidentReport{
			{ID: 2, Title: "Newer"},
			{ID: 1, Title: "Older"},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/me/reports", nil, userHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Newer", resp[0].Title)
}

func TestMySummary_Success(t *testing.T) {
	_, mockIncidents, mockAuth, router := newTestHandler(t)
	expectUserToken(mockAuth)

	mockIncidents.EXPECT().
		AccountSummary(gomock.Any(), int64(2)).
		Return(&models.AccountSummary{
			SeverityBreakdown: []models.SeverityCount{{Label: "High", Total: 2}},
			DailySeries:       []models.DailyCount{{Date: "2025-06-10", Count: 2}},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/me/summary", nil, userHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AccountSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.SeverityBreakdown, 1)
	assert.Equal(t, "High", resp.SeverityBreakdown[0].Label)
}

func TestForgotPassword_Success(t *testing.T) {
	_, _, mockAuth, router := newTestHandler(t)

	mockAuth.EXPECT().
		RequestPasswordReset(gomock.Any(), "citizen@example.com").
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(ForgotPasswordRequest{Email: "citizen@example.com"})
	w := makeRequest(router, "POST", "/api/v1/auth/forgot-password", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResetPassword_Handler_InvalidToken(t *testing.T) {
	_, _, mockAuth, router := newTestHandler(t)

	mockAuth.EXPECT().
		ResetPassword(gomock.Any(), "bad-token", "new-secret").
		Return(service.ErrInvalidToken).
		Times(1)

	bodyBytes, _ := json.Marshal(ResetPasswordRequest{Password: "new-secret"})
	w := makeRequest(router, "POST", "/api/v1/auth/reset-password/bad-token", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	_, _, mockAuth, router := newTestHandler(t)

	mockAuth.EXPECT().
		ParseToken("garbage").
		Return(nil, errors.New("token is malformed")).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/me", nil, map[string]string{"Authorization": "Bearer garbage"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
