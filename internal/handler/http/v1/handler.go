package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/incident_reporting_system/internal/config"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	authService     service.AuthService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, authService service.AuthService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		authService:     authService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondError переводит сентинельные ошибки сервисов в HTTP-статусы
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
	case errors.Is(err, service.ErrDuplicateAccount):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Report a new incident
// @Description Report a new incident. Severity is classified from the description when not provided. Works anonymously, an authenticated report is attributed to the account.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var accountID *int64
	if claims := claimsFromContext(c); claims != nil {
		accountID = &claims.AccountID
	}

	incident, err := h.incidentService.CreateIncident(c.Request.Context(), DTOToNewIncident(input, accountID))
	if err != nil {
		log.WithError(err).Error("Failed to create incident in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. The status falls back to the latest attention record label when no direct state is set.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Set incident processing state
// @Description Set the direct processing state of an incident. Operator decision is authoritative, the last write wins. Requires admin role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param state body SetStateRequest true "New state"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or state value"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/state [patch]
func (h *Handler) setIncidentState(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "setIncidentState").WithField("id", id)

	var input SetStateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.SetIncidentState(c.Request.Context(), id, input.State)
	if err != nil {
		log.WithError(err).Warn("Failed to set incident state in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Add an attention record to an incident
// @Description Append an immutable record of an operator action. Records are never updated or deleted. Requires admin role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param attention body AttentionRequest true "Attention record"
// @Success 201 {object} AttentionResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/attention [post]
func (h *Handler) addAttention(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "addAttention").WithField("id", id)

	var input AttentionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var adminID *int64
	if claims := claimsFromContext(c); claims != nil {
		adminID = &claims.AccountID
	}

	record, err := h.incidentService.AddAttention(c.Request.Context(), id, adminID, input.StatusLabel)
	if err != nil {
		log.WithError(err).Warn("Failed to add attention record in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAttentionResponse(record))
}

// @Summary Get heatmap points
// @Description Get geolocated incident points for a heatmap. Only incidents with both coordinates are included, resolved ones are excluded unless requested. Requires admin role.
// @Tags Aggregation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param start query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Param severity_min query int false "Minimum severity (1-4)"
// @Param severity_max query int false "Maximum severity (1-4)"
// @Param states query string false "Comma-separated list of presented statuses"
// @Param bbox query string false "Bounding box as south,west,north,east"
// @Param include_resolved query bool false "Include resolved incidents" default(false)
// @Param limit query int false "Maximum number of points" default(2000)
// @Success 200 {object} HeatmapResponse
// @Failure 400 {object} map[string]string "Invalid filter parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/heatmap [get]
func (h *Handler) heatmap(c *gin.Context) {
	log := h.logger.WithField("method", "heatmap")

	filter, err := parseHeatmapFilter(c)
	if err != nil {
		log.WithError(err).Warn("Invalid heatmap filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.incidentService.Heatmap(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to build heatmap in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToHeatmapResponse(result))
}

func parseHeatmapFilter(c *gin.Context) (models.HeatmapFilter, error) {
	var filter models.HeatmapFilter

	parseTime := func(name string) (*time.Time, error) {
		raw := c.Query(name)
		if raw == "" {
			return nil, nil
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return &t, nil
		}
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			return &t, nil
		}
		return nil, fmt.Errorf("invalid %s parameter", name)
	}
	parseSeverity := func(name string) (*models.Severity, error) {
		raw := c.Query(name)
		if raw == "" {
			return nil, nil
		}
		val, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s parameter", name)
		}
		sev := models.Severity(val)
		if !sev.Valid() {
			return nil, fmt.Errorf("invalid %s parameter", name)
		}
		return &sev, nil
	}

	var err error
	if filter.Start, err = parseTime("start"); err != nil {
		return filter, err
	}
	if filter.End, err = parseTime("end"); err != nil {
		return filter, err
	}
	if filter.SeverityMin, err = parseSeverity("severity_min"); err != nil {
		return filter, err
	}
	if filter.SeverityMax, err = parseSeverity("severity_max"); err != nil {
		return filter, err
	}

	if raw := c.Query("states"); raw != "" {
		for _, state := range strings.Split(raw, ",") {
			state = strings.TrimSpace(state)
			if state != "" {
				filter.States = append(filter.States, state)
			}
		}
	}

	if raw := c.Query("bbox"); raw != "" {
		parts := strings.Split(raw, ",")
		if len(parts) != 4 {
			return filter, fmt.Errorf("bbox must be south,west,north,east")
		}
		coords := make([]float64, 4)
		for i, part := range parts {
			val, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return filter, fmt.Errorf("invalid bbox parameter")
			}
			coords[i] = val
		}
		filter.BBox = &models.BoundingBox{
			South: coords[0],
			West:  coords[1],
			North: coords[2],
			East:  coords[3],
		}
	}

	filter.IncludeResolved = c.Query("include_resolved") == "true"

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return filter, fmt.Errorf("invalid limit parameter")
		}
		filter.Limit = limit
	}
	return filter, nil
}

// @Summary Get operator dashboard stats
// @Description Get a fresh snapshot of incident counters and a 7-day daily series. Requires admin role.
// @Tags Aggregation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/stats [get]
func (h *Handler) dashboardStats(c *gin.Context) {
	log := h.logger.WithField("method", "dashboardStats")

	stats, err := h.incidentService.DashboardStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to compute dashboard stats in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDashboardResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
