package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/http/middleware"
)

func TestClientIP(t *testing.T) {
	tcs := []struct {
		name     string
		header   http.Header
		remote   string
		expected string
	}{
		{"Remote-Addr", http.Header{}, "203.0.113.50:51234", "203.0.113.50"},
		{"Forwarded", http.Header{"X-Forwarded-For": {"203.0.113.9"}}, "10.0.0.2:80", "203.0.113.9"},
		{"Skips-Private", http.Header{"X-Forwarded-For": {"203.0.113.9, 10.0.0.4"}}, "10.0.0.2:80", "203.0.113.9"},
		{"Skips-Reserved", http.Header{"X-Forwarded-For": {"203.0.113.9, 100.64.1.1"}}, "10.0.0.2:80", "203.0.113.9"},
		{"Real-Ip", http.Header{"X-Real-Ip": {"198.51.100.7"}}, "10.0.0.2:80", "198.51.100.7"},
		{"Garbage-Header", http.Header{"X-Forwarded-For": {"not-an-ip"}}, "10.0.0.2:80", "10.0.0.2"},
		{"Nothing", http.Header{}, "", "0.0.0.0"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header = tc.header
			r.RemoteAddr = tc.remote

			// Act + Assert
			require.Equal(t, tc.expected, middleware.ClientIP(r))
		})
	}
}

func TestInjectIPAddress(t *testing.T) {
	// Arrange
	var actual any
	h := middleware.InjectIPAddress()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actual = r.Context().Value(connect.IpAddrKey)
	}))
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.9")

	// Act
	h.ServeHTTP(httptest.NewRecorder(), r)

	// Assert
	require.Equal(t, "203.0.113.9", actual)
}
