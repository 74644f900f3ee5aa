package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"admindash/internal/domain/entity"
	"admindash/pkg/errors"
	"admindash/pkg/logger"
)

const (
	ContextKeyUID       = "uid"
	ContextKeyPrincipal = "principal"
)

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*entity.Principal, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if token == "" {
			return errors.Unauthenticated("Missing Authorization Bearer token")
		}

		principal, err := m.verifier.VerifyToken(c.Request().Context(), token)
		if err != nil {
			logger.Warn("Auth verification failed: %v", err)
			return errors.InvalidCredential("Invalid or expired token", err)
		}

		c.Set(ContextKeyPrincipal, principal)
		c.Set(ContextKeyUID, principal.UID)

		return next(c)
	}
}

// PrincipalFrom returns the caller verified by Authenticate, if any.
func PrincipalFrom(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(ContextKeyPrincipal).(*entity.Principal)
	return principal, ok && principal != nil
}

func bearerToken(header string) string {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
