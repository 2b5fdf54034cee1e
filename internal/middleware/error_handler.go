package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"namelab/pkg/logger"
	jsonres "namelab/pkg/response"
)

// ErrorHandler is the echo HTTPErrorHandler: it keeps error payloads in the
// same envelope the handlers use and logs anything unexpected.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled request error",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	_ = c.JSON(code, jsonres.Error(http.StatusText(code), message, nil))
}
