package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты аутентификации
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/forgot-password", h.forgotPassword)
		auth.POST("/reset-password/:token", h.resetPassword)
	}

	// Маршруты текущей учетной записи
	me := api.Group("/me", AuthMiddleware(h.authService, h.logger))
	{
		me.GET("", h.me)
		me.GET("/reports", h.myReports)
		me.GET("/summary", h.mySummary)
	}

	// Маршруты инцидентов: репорт работает и анонимно
	incidents := api.Group("/incidents")
	{
		incidents.POST("", OptionalAuthMiddleware(h.authService, h.logger), h.createIncident)
		incidents.GET("/:id", h.getIncident)

		// Операторские маршруты только для администраторов
		admin := incidents.Group("", AuthMiddleware(h.authService, h.logger), AdminOnlyMiddleware(h.logger))
		{
			admin.GET("/heatmap", h.heatmap)
			admin.PATCH("/:id/state", h.setIncidentState)
			admin.POST("/:id/attention", h.addAttention)
		}
	}

	// Операторская панель
	api.GET("/dashboard/stats",
		AuthMiddleware(h.authService, h.logger),
		AdminOnlyMiddleware(h.logger),
		h.dashboardStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
