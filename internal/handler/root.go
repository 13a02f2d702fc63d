// Package handler contains the HTTP handlers for the form service.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root returns a fixed greeting.  It touches neither validation nor
// storage and doubles as a reachability smoke test.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, "Hello World!")
}
