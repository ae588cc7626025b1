package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Register a new account
// @Description Register a new citizen account. Name and email are unique case-insensitively.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body RegisterRequest true "Registration request"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Name or email already taken"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

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

	account, err := h.authService.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		log.WithError(err).Warn("Failed to register account in service")
		respondError(c, err)
		return
	}

	role, err := h.authService.ResolveRole(c.Request.Context(), account.ID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve role for new account")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAccountResponse(account, role))
}

// @Summary Log in
// @Description Authenticate with name and password, receive a session token with identity and role claims.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

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

	session, err := h.authService.Login(c.Request.Context(), input.Name, input.Password)
	if err != nil {
		log.WithError(err).Warn("Failed login attempt")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary Get current account
// @Description Get identity and role of the authenticated account.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /me [get]
func (h *Handler) me(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{
		AccountID: claims.AccountID,
		Username:  claims.Username,
		Email:     claims.Email,
		Role:      claims.Role,
	})
}

// @Summary Get own incident reports
// @Description Get the authenticated account's incident reports, newest first.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /me/reports [get]
func (h *Handler) myReports(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	log := h.logger.WithField("method", "myReports").WithField("account_id", claims.AccountID)

	reports, err := h.incidentService.ListAccountReports(c.Request.Context(), claims.AccountID)
	if err != nil {
		log.WithError(err).Error("Failed to list reports in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(reports))
}

// @Summary Get own 7-day summary
// @Description Get a severity breakdown and a daily series for the account's reporting window. The window ends at the later of today and the last report date.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AccountSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /me/summary [get]
func (h *Handler) mySummary(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	log := h.logger.WithField("method", "mySummary").WithField("account_id", claims.AccountID)

	summary, err := h.incidentService.AccountSummary(c.Request.Context(), claims.AccountID)
	if err != nil {
		log.WithError(err).Error("Failed to build summary in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSummaryResponse(summary))
}

// @Summary Request a password reset
// @Description Send a password reset link to the account email. The link carries a short-lived token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param email body ForgotPasswordRequest true "Password reset request"
// @Success 200 {object} map[string]string "Reset mail enqueued"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /auth/forgot-password [post]
func (h *Handler) forgotPassword(c *gin.Context) {
	var input ForgotPasswordRequest
	log := h.logger.WithField("method", "forgotPassword")

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

	if err := h.authService.RequestPasswordReset(c.Request.Context(), input.Email); err != nil {
		log.WithError(err).Warn("Failed to request password reset")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reset mail sent"})
}

// @Summary Reset password
// @Description Set a new password using a reset token from the mail link.
// @Tags Auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param password body ResetPasswordRequest true "New password"
// @Success 200 {object} map[string]string "Password updated"
// @Failure 400 {object} map[string]string "Invalid request body or weak password"
// @Failure 401 {object} map[string]string "Invalid or expired token"
// @Router /auth/reset-password/{token} [post]
func (h *Handler) resetPassword(c *gin.Context) {
	var input ResetPasswordRequest
	log := h.logger.WithField("method", "resetPassword")

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

	if err := h.authService.ResetPassword(c.Request.Context(), c.Param("token"), input.Password); err != nil {
		log.WithError(err).Warn("Failed to reset password")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
