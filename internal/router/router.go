// Package router assembles the Echo instance that serves the API.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/grandeurhq/form-service/internal/config"
	"github.com/grandeurhq/form-service/internal/handler"
	"github.com/grandeurhq/form-service/internal/middleware"
	"github.com/grandeurhq/form-service/internal/validation"
)

// New wires request validation, the central error handler, recovery,
// request logging, the cross-origin policy and the routes.  The request
// logger sits outermost so it still observes requests whose handler
// panicked; Recover turns such panics into errors for ErrorHandler.
func New(cors config.CORSConfig, form *handler.FormHandler, health *handler.HealthHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = handler.ErrorHandler

	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(middleware.CORS(cors))

	e.GET("/", handler.Root)
	e.POST("/submit-form", form.Submit)
	e.GET("/health", health.Check)

	return e
}
