package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/grandeurhq/form-service/internal/validation"
)

// errorResp is the envelope every failure response uses.  Detail carries
// either a plain message or a list of field errors.
type errorResp struct {
	Detail interface{} `json:"detail"`
}

// Client-facing failure messages.  Internal error text never leaves the
// process; it goes to the log instead.
const (
	msgDatabaseError   = "Database error occurred while submitting the form"
	msgUnexpectedError = "An unexpected error occurred while processing your request"
	msgUnavailable     = "Service unavailable"
)

// ErrorHandler translates every error escaping a handler into the API's
// error envelope.  Validation failures become 422 responses with field
// detail and echo's own HTTP errors (404, 405, ...) keep their status.
// Anything else, including panics surfaced by the recover middleware, is
// logged in full and reported only as a generic 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := interface{}(msgUnexpectedError)

	var verrs validation.Errors
	var he *echo.HTTPError
	switch {
	case errors.As(err, &verrs):
		code = http.StatusUnprocessableEntity
		detail = verrs
	case errors.As(err, &he):
		code = he.Code
		detail = he.Message
	default:
		log.WithField("err", err).Error("unexpected error while handling request")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, errorResp{Detail: detail})
	}
	if writeErr != nil {
		log.WithField("err", writeErr).Error("failed to write error response")
	}
}
