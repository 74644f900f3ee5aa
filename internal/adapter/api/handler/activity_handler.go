package handler

import (
	"github.com/labstack/echo/v4"

	"admindash/internal/usecase"
	"admindash/pkg/response"
)

type ActivityHandler struct {
	activities ActivityService
}

func NewActivityHandler(activities ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activities: activities,
	}
}

type createActivityRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Type    string `json:"type" validate:"required"`
	Details string `json:"details"`
}

func (h *ActivityHandler) Create(c echo.Context) error {
	var req createActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	_, err := h.activities.Create(c.Request().Context(), usecase.CreateActivityInput{
		UserID:  req.UserID,
		Type:    req.Type,
		Details: req.Details,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, successResponse{Success: true})
}

func (h *ActivityHandler) ListRecent(c echo.Context) error {
	activities, err := h.activities.ListRecent(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, activities)
}

func (h *ActivityHandler) ListByUser(c echo.Context) error {
	activities, err := h.activities.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, activities)
}
