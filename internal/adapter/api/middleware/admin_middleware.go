package middleware

import (
	"github.com/labstack/echo/v4"

	"admindash/internal/domain/repository"
	"admindash/pkg/errors"
	"admindash/pkg/logger"
)

type AdminMiddleware struct {
	adminRepo repository.AdminRepository
}

func NewAdminMiddleware(adminRepo repository.AdminRepository) *AdminMiddleware {
	return &AdminMiddleware{
		adminRepo: adminRepo,
	}
}

// AdminOnly must run after Authenticate. The admin record is read on every
// request so revocations apply immediately.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := PrincipalFrom(c)
		if !ok || principal.UID == "" {
			return errors.Unauthenticated("Unauthenticated")
		}

		isAdmin, err := m.adminRepo.IsAdmin(c.Request().Context(), principal.UID)
		if err != nil {
			logger.Error("Admin check failed for %s: %v", principal.UID, err)
			return errors.Internal("Admin check failed", err)
		}

		if !isAdmin {
			return errors.Forbidden("Forbidden: admin access only", nil)
		}

		return next(c)
	}
}
