package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Nareshm03/Payroll-Management-System/internal/database/models"
	"github.com/Nareshm03/Payroll-Management-System/internal/database/service"
)

// CurrentUserKey is the gin context key under which RequireAuth stores the
// resolved user.
const CurrentUserKey = "currentUser"

// AuthMiddleware resolves bearer tokens to users and enforces role gates
type AuthMiddleware struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(service service.AuthService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		service: service,
		logger:  logger,
	}
}

// RequireAuth validates the bearer token, loads the acting user, and sets it
// in the context. Any failure aborts with 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.resolve(c)
		if !ok {
			return
		}

		c.Set(CurrentUserKey, user)
		m.logger.Debug("✅ [Middleware] Token validated", "user_id", user.ID, "role", user.Role)

		c.Next()
	}
}

// RequireAdmin is RequireAuth plus an admin role check; a non-admin user gets
// 403.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.resolve(c)
		if !ok {
			return
		}

		if user.Role != models.RoleAdmin {
			m.logger.Warn("⚠️ [Middleware] Admin access denied", "user_id", user.ID, "role", user.Role)
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) (*models.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		m.logger.Warn("⚠️ [Middleware] Missing Authorization header")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		c.Abort()
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		m.logger.Warn("⚠️ [Middleware] Invalid Authorization header format")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		c.Abort()
		return nil, false
	}

	user, err := m.service.CurrentUser(parts[1])
	if err != nil {
		m.logger.Warn("⚠️ [Middleware] Invalid token", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return nil, false
	}

	return user, true
}

// CurrentUser returns the user stored by RequireAuth / RequireAdmin.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
