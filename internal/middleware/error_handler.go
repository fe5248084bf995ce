package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Eursukkul/eventhub/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders error.html with the HTTP status. Errors that are not
// *echo.HTTPError are unexpected (store unavailable, template failure) and
// become a logged 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	} else {
		slog.Error("unhandled error",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	if rerr := c.Render(code, "error.html", dto.ErrorPage{Code: code, Message: msg}); rerr != nil {
		if !errors.Is(rerr, echo.ErrRendererNotRegistered) {
			slog.Error("render error page", "error", rerr)
		}
		_ = c.String(code, msg)
	}
}
