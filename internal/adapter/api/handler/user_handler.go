package handler

import (
	"github.com/labstack/echo/v4"

	"admindash/pkg/response"
)

type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

func (h *UserHandler) LearnProgress(c echo.Context) error {
	rows, err := h.users.LearnProgress(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, rows)
}

func (h *UserHandler) ListProgress(c echo.Context) error {
	rows, err := h.users.ListProgress(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, rows)
}

func (h *UserHandler) GetProgress(c echo.Context) error {
	progress, err := h.users.GetProgress(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, progress)
}

func (h *UserHandler) ListAuthUsers(c echo.Context) error {
	users, err := h.users.ListAuthUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, users)
}

func (h *UserHandler) Combined(c echo.Context) error {
	users, err := h.users.Combined(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, users)
}

func (h *UserHandler) DisplayNameChanges(c echo.Context) error {
	changes, err := h.users.DisplayNameChanges(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, changes)
}
