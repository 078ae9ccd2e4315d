package middleware

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/xy-planning-network/connect"
)

// ReportPanic encloses the env and returns a function that when called,
// wraps the passed in http.HandlerFunc in sentryhttp.HandleFunc
// in order to recover and report panics.
//
// The request reported has connect.MaskedKeys masked in its query.
//
// In development, panics are left to net/http.
func ReportPanic(env connect.Environment) func(http.HandlerFunc) http.HandlerFunc {
	if env.IsDevelopment() {
		return func(handler http.HandlerFunc) http.HandlerFunc { return handler }
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(handler http.HandlerFunc) http.HandlerFunc {
		return sh.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
			if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
				hub.Scope().SetRequest(connect.MaskRequest(r))
			}

			handler(w, r)
		})
	}
}
