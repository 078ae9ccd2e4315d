package middleware

import (
	"net/http"

	"github.com/xy-planning-network/connect"
)

// ForceHTTPS redirects HTTP requests to HTTPS when env serves secure cookies.
//
// The "X-Forwarded-Proto" header decides whether HTTP was requested
// when the application runs behind a proxy terminating TLS.
func ForceHTTPS(env connect.Environment) Adapter {
	if !env.SecureCookies() {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Forwarded-Proto") == "https" || r.TLS != nil {
				handler.ServeHTTP(w, r)
				return
			}

			u := *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}
