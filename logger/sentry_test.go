package logger_test

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/require"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/logger"
)

const testDSN = "https://public@sentry.example.com/1"

type capturingTransport struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (tr *capturingTransport) Configure(sentry.ClientOptions) {}

func (tr *capturingTransport) Flush(time.Duration) bool { return true }

func (tr *capturingTransport) SendEvent(event *sentry.Event) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.events = append(tr.events, event)
}

func TestSentryLoggerMasksRequest(t *testing.T) {
	// Arrange
	cl := logger.New(logger.WithLogger(log.New(io.Discard, "", 0)))
	l := logger.NewSentryLogger(cl, testDSN)

	tr := new(capturingTransport)
	require.NoError(t, sentry.Init(sentry.ClientOptions{Dsn: testDSN, Transport: tr}))

	r := httptest.NewRequest(http.MethodGet, "https://connect.example.com/auth/google/callback?code=4/secret-code&state=abc", nil)

	// Act
	l.Error("backend rejected code", &logger.LogContext{Request: r, Error: errors.New("exchange failed")})

	// Assert
	require.Len(t, tr.events, 1)
	req := tr.events[0].Request
	require.NotNil(t, req)
	require.NotContains(t, req.QueryString, "secret-code")
	require.NotContains(t, req.QueryString, "abc")
	require.Contains(t, req.QueryString, "code="+connect.LogMaskVal)
	require.NotContains(t, req.URL, "secret-code")
	require.Equal(t, "4/secret-code", r.URL.Query().Get("code"))
}
