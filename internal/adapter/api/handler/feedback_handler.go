package handler

import (
	"github.com/labstack/echo/v4"

	"admindash/internal/usecase"
	"admindash/pkg/response"
)

type FeedbackHandler struct {
	feedback FeedbackService
}

func NewFeedbackHandler(feedback FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedback: feedback,
	}
}

type submitFeedbackRequest struct {
	UserID    string `json:"userId" validate:"required"`
	Message   string `json:"message" validate:"required"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// Submit is mounted without authentication so client apps can send feedback.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req submitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	_, err := h.feedback.Submit(c.Request().Context(), usecase.SubmitFeedbackInput{
		UserID:    req.UserID,
		Message:   req.Message,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, successResponse{Success: true})
}

func (h *FeedbackHandler) List(c echo.Context) error {
	items, err := h.feedback.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, items)
}

func (h *FeedbackHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	feedbackID := c.Param("id")
	if err := h.feedback.UpdateStatus(c.Request().Context(), feedbackID, req.Status); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, successResponse{
		Success:    true,
		FeedbackID: feedbackID,
		Status:     req.Status,
	})
}

func (h *FeedbackHandler) Resolve(c echo.Context) error {
	feedbackID := c.Param("id")
	if err := h.feedback.Resolve(c.Request().Context(), feedbackID); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, successResponse{
		Success:    true,
		FeedbackID: feedbackID,
		Message:    "Feedback moved to recycle bin",
	})
}

// ListRecycled also purges expired entries; see FeedbackUseCase.ListRecycled.
func (h *FeedbackHandler) ListRecycled(c echo.Context) error {
	items, err := h.feedback.ListRecycled(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, items)
}

func (h *FeedbackHandler) Restore(c echo.Context) error {
	feedbackID := c.Param("id")
	if err := h.feedback.Restore(c.Request().Context(), feedbackID); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, successResponse{
		Success:    true,
		FeedbackID: feedbackID,
		Message:    "Feedback restored",
	})
}
