package middleware

import (
	"net/http"
	"os"

	"github.com/aireclaro/aireclaro/internal/api/models"
)

// securityHeaders are applied to every response. The Content-Security-Policy
// admits the dashboard's CDN assets (Leaflet, ECharts) and OpenStreetMap
// tiles; the inline map and chart bootstrap scripts need 'unsafe-inline'.
var securityHeaders = map[string]string{
	"X-Content-Type-Options":    "nosniff",
	"X-Frame-Options":           "DENY",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	"Referrer-Policy":           "strict-origin-when-cross-origin",
	"Permissions-Policy":        "geolocation=(), camera=(), microphone=()",
	"Content-Security-Policy": "default-src 'self'; " +
		"script-src 'self' 'unsafe-inline' https://unpkg.com https://cdn.jsdelivr.net; " +
		"style-src 'self' 'unsafe-inline' https://unpkg.com; " +
		"img-src 'self' data: https://*.tile.openstreetmap.org; " +
		"connect-src 'self'; " +
		"frame-ancestors 'none'",
}

// SecurityHeaders sets hardening headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for name, value := range securityHeaders {
			h.Set(name, value)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireTLS rejects plain HTTP requests when REQUIRE_TLS=true. TLS
// terminates at the Cloud Run load balancer, so the check reads the
// X-Forwarded-Proto header rather than r.TLS.
func RequireTLS(next http.Handler) http.Handler {
	enforce := os.Getenv("REQUIRE_TLS") == "true"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if enforce {
			if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" && proto != "https" {
				models.NewProblem(
					"https://api.aireclaro.mx/problems/tls-required",
					"TLS required",
					http.StatusForbidden,
					GetRequestID(r.Context()),
				).
					WithDetail("This endpoint requires HTTPS").
					WithInstance(r.URL.Path).
					Write(w)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
