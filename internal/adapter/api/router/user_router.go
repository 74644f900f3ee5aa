package router

import (
	"github.com/labstack/echo/v4"

	"admindash/internal/adapter/api/handler"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, guards Guards) {
	users := e.Group("/users", guards.adminChain()...)

	users.GET("/learn-progress", userHandler.LearnProgress)
	users.GET("/progress", userHandler.ListProgress)
	users.GET("/progress/:userId", userHandler.GetProgress)
	users.GET("/auth", userHandler.ListAuthUsers)
	users.GET("/combined", userHandler.Combined)

	e.GET("/display-name-changes", userHandler.DisplayNameChanges, guards.adminChain()...)
}
