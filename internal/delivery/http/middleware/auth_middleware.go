package middleware

import (
	"strings"

	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key holding the authenticated user's ID.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's user ID
// on the request context. Any failure maps to a 401 with the standard
// error body, the concrete reason is never leaked to the client.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WrapMessage("token must use the Bearer scheme")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage("token validation failed")
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}
