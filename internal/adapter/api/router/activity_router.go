package router

import (
	"github.com/labstack/echo/v4"

	"admindash/internal/adapter/api/handler"
)

func SetupActivityRouter(e *echo.Echo, activityHandler *handler.ActivityHandler, guards Guards) {
	protected := guards.adminChain()

	e.POST("/activity", activityHandler.Create, protected...)

	activities := e.Group("/activities", protected...)
	activities.GET("/recent", activityHandler.ListRecent)
	activities.GET("/user/:userId", activityHandler.ListByUser)
}
