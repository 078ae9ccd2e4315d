package middleware_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/http/middleware"
	"github.com/xy-planning-network/connect/logger"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	tcs := []struct {
		name       string
		target     string
		ip         string
		contains   []string
		notContain string
	}{
		{"Path", "/auth/google", "", []string{"GET /auth/google"}, ""},
		{"With-IP", "/", "203.0.113.9", []string{"203.0.113.9 GET /"}, ""},
		{
			"Masks-Code",
			"/auth/google/callback?code=4/secret-code&scope=email&state=abc",
			"",
			[]string{"code=" + connect.LogMaskVal, "scope=email", "state=" + connect.LogMaskVal},
			"secret-code",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.New(logger.WithLogger(log.New(b, "", 0)))
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.ip != "" {
				r = r.WithContext(context.WithValue(r.Context(), connect.IpAddrKey, tc.ip))
			}

			var called bool

			// Act
			middleware.LogRequest(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})).ServeHTTP(httptest.NewRecorder(), r)

			// Assert
			require.True(t, called)
			for _, c := range tc.contains {
				require.Contains(t, b.String(), c)
			}
			if tc.notContain != "" {
				require.NotContains(t, b.String(), tc.notContain)
			}
		})
	}
}
