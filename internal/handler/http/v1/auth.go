package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Ключ, под которым клеймы сессии лежат в контексте gin
const ctxClaimsKey = "session_claims"

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// AuthMiddleware - middleware для аутентификации по сессионному JWT
func AuthMiddleware(authService service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			log.Warn("Session token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		claims, err := authService.ParseToken(token)
		if err != nil {
			log.WithError(err).Warn("Invalid session token provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware извлекает клеймы, если токен передан, но не требует его.
// Невалидный токен трактуется как анонимный запрос.
func OptionalAuthMiddleware(authService service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := authService.ParseToken(token); err == nil {
				c.Set(ctxClaimsKey, claims)
			} else {
				log.WithError(err).Debug("Ignoring invalid token on optional-auth route")
			}
		}
		c.Next()
	}
}

// AdminOnlyMiddleware пропускает только аккаунты с ролью admin.
// Ставится после AuthMiddleware.
func AdminOnlyMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFromContext(c)
		if claims == nil || claims.Role != models.RoleAdmin {
			log.Warn("Non-admin access to admin-only route")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// claimsFromContext возвращает клеймы сессии из контекста gin или nil
func claimsFromContext(c *gin.Context) *models.Claims {
	val, ok := c.Get(ctxClaimsKey)
	if !ok {
		return nil
	}
	claims, ok := val.(*models.Claims)
	if !ok {
		return nil
	}
	return claims
}
