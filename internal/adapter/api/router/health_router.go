package router

import (
	"github.com/labstack/echo/v4"

	"admindash/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo, healthHandler *handler.HealthHandler, guards Guards) {
	e.GET("/", healthHandler.Root)
	e.GET("/test-firestore", healthHandler.CheckFirestore, guards.adminChain()...)
}
