package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/services"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_id"

// ContextPrincipalKey is the context key under which SessionAuth stores the
// resolved principal.
const ContextPrincipalKey = "principal"

// AuthMiddleware guards routes with session cookie authentication.
type AuthMiddleware struct {
	authService services.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// SessionAuth validates the session cookie and stores the resolved principal
// in the request context. Requests without a valid session get 401.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("Authentication required"))
			return
		}

		principal, err := m.authService.Validate(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("Invalid or expired session"))
			return
		}

		c.Set(ContextPrincipalKey, principal)
		c.Next()
	}
}

// RoleRequired rejects requests whose principal does not hold the role.
// Must run after SessionAuth.
func (m *AuthMiddleware) RoleRequired(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFromContext(c)
		if principal == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse("Authentication required"))
			return
		}

		if principal.Role != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("Permission denied"))
			return
		}

		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal set by
// SessionAuth, or nil when the request is unauthenticated.
func PrincipalFromContext(c *gin.Context) *dto.PrincipalDTO {
	value, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return nil
	}
	principal, ok := value.(*dto.PrincipalDTO)
	if !ok {
		return nil
	}
	return principal
}
