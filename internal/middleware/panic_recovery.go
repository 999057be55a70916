package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"eyesonplants/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts handler panics into the standard error envelope.
// The panic value and stack are logged with the request's trace ID so the
// 500 the client sees can be matched to the crash in the logs.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.Error("recovered from panic",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				resp := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, resp); err != nil {
					slog.Error("writing panic response failed",
						"trace_id", traceID,
						"error", err.Error(),
					)
				}
			}()

			return next(c)
		}
	}
}
