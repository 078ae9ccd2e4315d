package middleware

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/logger"
)

// LogRequest logs the request's method, requested URL, and originating IP address
// using the enclosed implementation of logger.Logger.
//
// LogRequest masks the values for the query params named in connect.MaskedKeys,
// notably the authorization code Google redirects back with.
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.Path
			if query := connect.Mask(r.URL.Query(), connect.MaskedKeys...).Encode(); query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method, uri}
			if ip, ok := r.Context().Value(connect.IpAddrKey).(string); ok {
				strs = append([]string{ip}, strs...)
			}

			var ctx *logger.LogContext
			if id, ok := r.Context().Value(connect.RequestIDKey).(string); ok {
				ctx = &logger.LogContext{Data: map[string]any{"request_id": id}}
			}

			ls.Info(strings.Join(strs, " "), ctx)
			h.ServeHTTP(w, r)
		})
	}
}
