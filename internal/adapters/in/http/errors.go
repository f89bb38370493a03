package http

import (
	"context"
	"errors"
	"net/http"

	"canteen/internal/core/application/payment"
	"canteen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errUnauthenticated = errors.New("X-User-Role header is required")
	errForbidden       = errors.New("role is not allowed to perform this operation")
)

// statusOf maps a core error class to an HTTP status code.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrEmptyCart):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrFeedbackNotAllowed):
		return http.StatusConflict
	case errors.Is(err, payment.ErrAborted):
		return http.StatusPaymentRequired
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err. Internal errors are logged and hidden behind a
// generic message.
func (s *Server) writeError(ctx echo.Context, err error, internalMessage string) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), internalMessage,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = internalMessage
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
