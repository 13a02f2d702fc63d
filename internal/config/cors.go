package config

// This file defines the cross-origin policy configuration.  The defaults
// are fully permissive (any origin, credentials allowed) which suits a
// public form endpoint consumed by arbitrary frontends; deployments that
// serve a single frontend should narrow CORS_ALLOW_ORIGINS to its domain.

import (
	"os"
	"strings"
)

// CORSConfig controls the cross-origin policy applied to every route.
// Supported variables are:
//
//	CORS_ALLOW_ORIGINS     comma separated origins (default "*")
//	CORS_ALLOW_METHODS     comma separated methods (default: framework set)
//	CORS_ALLOW_HEADERS     comma separated headers (default: mirror request)
//	CORS_ALLOW_CREDENTIALS "true" or "false" (default "true")
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
}

func loadCORS() CORSConfig {
	return CORSConfig{
		AllowOrigins:     splitList(getenv("CORS_ALLOW_ORIGINS", "*")),
		AllowMethods:     splitList(os.Getenv("CORS_ALLOW_METHODS")),
		AllowHeaders:     splitList(os.Getenv("CORS_ALLOW_HEADERS")),
		AllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "true") == "true",
	}
}

// splitList splits a comma separated value, trimming whitespace and
// dropping empty entries.  It returns nil for an empty input.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
