package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "admindash/pkg/errors"
	"admindash/pkg/logger"
)

type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// OK writes data as the bare JSON body. Admin clients consume arrays and
// objects directly, so there is no envelope.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.LogOperationError(operation(c), err)
		}
		return c.JSON(appErr.Status, ErrorBody{Error: appErr.Message, Code: appErr.Code})
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return c.JSON(httpErr.Code, ErrorBody{
			Error: fmt.Sprint(httpErr.Message),
			Code:  codeForStatus(httpErr.Code),
		})
	}

	logger.LogOperationError(operation(c), err)
	return c.JSON(http.StatusInternalServerError, ErrorBody{
		Error: err.Error(),
		Code:  apperrors.CodeInternal,
	})
}

// HTTPErrorHandler is installed on the echo instance so errors returned by
// middleware and unknown routes share the handler error shape.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if writeErr := Error(c, err); writeErr != nil {
		logger.Error("failed to write error response: %v", writeErr)
	}
}

func operation(c echo.Context) string {
	return c.Request().Method + " " + c.Path()
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	messages := make([]string, 0, len(validationErr))
	for _, err := range validationErr {
		field := err.Field()
		switch err.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "oneof":
			messages = append(messages, field+" must be one of: "+err.Param())
		case "email":
			messages = append(messages, field+" must be a valid email address")
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	message := "Invalid input data"
	if len(messages) > 0 {
		message = strings.Join(messages, "; ")
	}

	return c.JSON(http.StatusBadRequest, ErrorBody{Error: message, Code: apperrors.CodeBadRequest})
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return apperrors.CodeBadRequest
	case http.StatusUnauthorized:
		return apperrors.CodeUnauthenticated
	case http.StatusForbidden:
		return apperrors.CodeForbidden
	case http.StatusNotFound:
		return apperrors.CodeNotFound
	case http.StatusInternalServerError:
		return apperrors.CodeInternal
	default:
		return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	}
}
