package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Catalogued
// errors keep their status and business code; anything else is logged with
// the request id and returned as a redacted internal error.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	requestID := deliverycontext.GetRequestID(c)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPCode(), domainerrors.Response{ //nolint:errcheck
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
			RequestID: requestID,
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		c.JSON(httpErr.Code, domainerrors.Response{ //nolint:errcheck
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
			RequestID: requestID,
		})

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("request_id", requestID),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.Any("error", err),
	)

	c.JSON(http.StatusInternalServerError, domainerrors.Response{ //nolint:errcheck
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &domainerrors.ErrorInfo{
			Code: "INTERNAL_ERROR",
		},
		RequestID: requestID,
	})
}
