package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"admindash/pkg/response"
)

type HealthHandler struct {
	system SystemService
}

func NewHealthHandler(system SystemService) *HealthHandler {
	return &HealthHandler{
		system: system,
	}
}

func (h *HealthHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "Admin Dashboard Backend Running")
}

// CheckFirestore lists top-level collections to prove the store is reachable.
func (h *HealthHandler) CheckFirestore(c echo.Context) error {
	collections, err := h.system.ListCollections(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"collections": collections,
	})
}
