package router

import (
	"github.com/labstack/echo/v4"

	"admindash/internal/adapter/api/handler"
	"admindash/internal/adapter/api/middleware"
)

// Guards bundles the middleware the routers attach. FeedbackLimiter may be
// nil, in which case public feedback submission is not rate limited.
type Guards struct {
	Auth            *middleware.AuthMiddleware
	Admin           *middleware.AdminMiddleware
	FeedbackLimiter *middleware.RateLimiter
}

// adminChain verifies the bearer token first and checks the admin record
// second, so unauthenticated requests never reach the database.
func (g Guards) adminChain() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{g.Auth.Authenticate, g.Admin.AdminOnly}
}

func Setup(e *echo.Echo, h *handler.Handlers, guards Guards) {
	SetupHealthRouter(e, h.Health, guards)
	SetupActivityRouter(e, h.Activity, guards)
	SetupFeedbackRouter(e, h.Feedback, guards)
	SetupUserRouter(e, h.User, guards)
	SetupAnalyticsRouter(e, h.Analytics, guards)
}
