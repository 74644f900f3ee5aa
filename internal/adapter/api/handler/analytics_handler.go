package handler

import (
	"github.com/labstack/echo/v4"

	"admindash/pkg/response"
)

type AnalyticsHandler struct {
	analytics AnalyticsService
}

func NewAnalyticsHandler(analytics AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
	}
}

func (h *AnalyticsHandler) Summary(c echo.Context) error {
	summary, err := h.analytics.Summary(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, summary)
}

func (h *AnalyticsHandler) Leaderboard(c echo.Context) error {
	rows, err := h.analytics.Leaderboard(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, rows)
}
