package middleware

import (
	"strings"

	"starfund/internal/delivery/http/response"
	"starfund/internal/domain/entity"
	domainerrors "starfund/internal/domain/errors"
	"starfund/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUserID holds the authenticated user's id on echo.Context.
	ContextKeyUserID = "userID"
	// ContextKeyRole holds the authenticated user's role on echo.Context.
	ContextKeyRole = "role"
	// ContextKeyToken holds the raw bearer token on echo.Context.
	ContextKeyToken = "token"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's identity
// on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.Message())
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.Message())
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.Message())
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyToken, tokenString)

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds one of the given
// roles. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, domainerrors.ErrForbidden.Message())
			}
			if !entity.Roles(roles).Contains(role) {
				return response.Forbidden(c, domainerrors.ErrForbidden.Message())
			}

			return next(c)
		}
	}
}

// CallerID returns the authenticated user's id from the context.
func CallerID(c echo.Context) int64 {
	id, _ := c.Get(ContextKeyUserID).(int64)
	return id
}

// CallerRole returns the authenticated user's role from the context.
func CallerRole(c echo.Context) entity.Role {
	role, _ := c.Get(ContextKeyRole).(entity.Role)
	return role
}

// CallerToken returns the raw bearer token from the context.
func CallerToken(c echo.Context) string {
	token, _ := c.Get(ContextKeyToken).(string)
	return token
}
