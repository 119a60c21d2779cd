package apperr

import (
	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/logger"
)

// Respond logs the failure and writes the JSON error body {"detail": msg}.
// Not-found errors keep their specific message; everything else is prefixed
// with the endpoint's failure text, matching the API's historical wire format.
func Respond(c echo.Context, log *logger.Logger, prefix string, err error) error {
	detail := err.Error()
	if prefix != "" && !IsNotFound(err) {
		detail = prefix + ": " + err.Error()
	}
	log.Error(prefix, "path", c.Path(), "error", err)
	return c.JSON(HTTPStatus(err), map[string]string{"detail": detail})
}
