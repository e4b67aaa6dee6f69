package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// apiCSP forbids every fetch and framing; the API only ever returns JSON.
const apiCSP = "default-src 'none'; frame-ancestors 'none'"

// SecurityHeadersConfig shapes the hardening headers for the JSON API.
type SecurityHeadersConfig struct {
	// HSTSMaxAge is advertised only on requests that arrived over https,
	// directly or behind a proxy. Zero disables Strict-Transport-Security.
	HSTSMaxAge time.Duration
	// PatientDataPaths answer with patient records. Their responses, errors
	// included, are marked no-store; every other path gets no-cache.
	PatientDataPaths []string
}

// DefaultSecurityHeadersConfig marks /parse-query as carrying patient data
// and pins HSTS for a year.
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{
		HSTSMaxAge:       365 * 24 * time.Hour,
		PatientDataPaths: []string{"/parse-query"},
	}
}

// SecurityHeaders sets the headers before calling next so that responses
// written by the error handler carry them too.
func SecurityHeaders(cfg SecurityHeadersConfig) echo.MiddlewareFunc {
	private := make(map[string]struct{}, len(cfg.PatientDataPaths))
	for _, p := range cfg.PatientDataPaths {
		private[p] = struct{}{}
	}
	var hsts string
	if secs := int64(cfg.HSTSMaxAge / time.Second); secs > 0 {
		hsts = fmt.Sprintf("max-age=%d; includeSubDomains", secs)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderXContentTypeOptions, "nosniff")
			h.Set(echo.HeaderXFrameOptions, "DENY")
			h.Set(echo.HeaderXXSSProtection, "0")
			h.Set(echo.HeaderContentSecurityPolicy, apiCSP)
			h.Set(echo.HeaderReferrerPolicy, "no-referrer")

			if hsts != "" && c.Scheme() == "https" {
				h.Set(echo.HeaderStrictTransportSecurity, hsts)
			}

			if _, ok := private[c.Request().URL.Path]; ok {
				h.Set(echo.HeaderCacheControl, "no-store")
				h.Set("Pragma", "no-cache")
			} else {
				h.Set(echo.HeaderCacheControl, "no-cache")
			}

			return next(c)
		}
	}
}
