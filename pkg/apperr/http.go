package apperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"farmhub/pkg/logging"
)

func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// Respond writes err as a JSON error body. Internal failures are logged with
// full detail and answered with an opaque message.
func Respond(c echo.Context, err error) error {
	status := Status(err)
	if status == http.StatusInternalServerError {
		logging.Component("http").WithFields(log.Fields{
			"method":     c.Request().Method,
			"path":       c.Path(),
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		}).WithError(err).Error("request failed")
		return c.JSON(status, echo.Map{"error": "internal server error"})
	}

	body := echo.Map{"error": err.Error()}
	var e *Error
	if errors.As(err, &e) {
		body["error"] = e.Msg
		if e.Field != "" {
			body["field"] = e.Field
		}
	} else if KindOf(err) == KindNotFound {
		body["error"] = "not found"
	}
	return c.JSON(status, body)
}

// BadRequest answers a body that could not be decoded.
func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}
