package router

import (
	"github.com/labstack/echo/v4"

	"admindash/internal/adapter/api/handler"
)

func SetupAnalyticsRouter(e *echo.Echo, analyticsHandler *handler.AnalyticsHandler, guards Guards) {
	protected := guards.adminChain()

	e.GET("/analytics/summary", analyticsHandler.Summary, protected...)
	e.GET("/leaderboard", analyticsHandler.Leaderboard, protected...)
}
