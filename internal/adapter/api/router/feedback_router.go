package router

import (
	"github.com/labstack/echo/v4"

	"admindash/internal/adapter/api/handler"
)

func SetupFeedbackRouter(e *echo.Echo, feedbackHandler *handler.FeedbackHandler, guards Guards) {
	// Public: client apps submit feedback without admin credentials.
	var public []echo.MiddlewareFunc
	if guards.FeedbackLimiter != nil {
		public = append(public, guards.FeedbackLimiter.Middleware())
	}
	e.POST("/feedback", feedbackHandler.Submit, public...)

	protected := e.Group("/feedback", guards.adminChain()...)

	protected.GET("", feedbackHandler.List)
	protected.GET("/recycled", feedbackHandler.ListRecycled)
	protected.PATCH("/:id/status", feedbackHandler.UpdateStatus)
	protected.POST("/:id/resolve", feedbackHandler.Resolve)
	protected.POST("/:id/restore", feedbackHandler.Restore)
}
