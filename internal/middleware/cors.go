// Package middleware provides the HTTP middleware applied to every route.
package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/grandeurhq/form-service/internal/config"
)

// CORS builds the cross-origin middleware from the configured policy.
// Echo refuses to combine a wildcard origin with credentials unless the
// explicit unsafe opt-in is set; the permissive default policy needs
// exactly that combination, so the opt-in tracks the configuration.
func CORS(cfg config.CORSConfig) echo.MiddlewareFunc {
	mc := echomw.DefaultCORSConfig
	mc.AllowOrigins = cfg.AllowOrigins
	if len(cfg.AllowMethods) > 0 {
		mc.AllowMethods = cfg.AllowMethods
	}
	mc.AllowHeaders = cfg.AllowHeaders
	mc.AllowCredentials = cfg.AllowCredentials
	if cfg.AllowCredentials && wildcard(cfg.AllowOrigins) {
		mc.UnsafeWildcardOriginWithAllowCredentials = true
	}
	return echomw.CORSWithConfig(mc)
}

func wildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
