package http

import (
	"errors"
	"net/http"

	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrTransitionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrReferenceIsInvalid), errors.Is(err, errs.ErrValidationFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err with its mapped status. Internal errors are logged and their text
// is not sent to the client.
func (s *Server) fail(c echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		message = http.StatusText(status)
	}
	return c.JSON(status, Error{Code: status, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
