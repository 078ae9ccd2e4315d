package status_test

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/http/session"
	"github.com/xy-planning-network/connect/logger"
	"github.com/xy-planning-network/connect/status"
)

func TestSeverity(t *testing.T) {
	tcs := []struct {
		severity status.Severity
		color    string
	}{
		{status.Info, "#007bff"},
		{status.Success, "#28a745"},
		{status.Error, "#dc3545"},
	}

	for _, tc := range tcs {
		t.Run(tc.severity.String(), func(t *testing.T) {
			require.NoError(t, tc.severity.Valid())
			require.Equal(t, tc.color, tc.severity.Color())
			require.Equal(t, tc.severity, status.SeverityOf(tc.severity.String()))
		})
	}

	require.ErrorIs(t, status.Severity("warning").Valid(), connect.ErrNotValid)
	require.Equal(t, status.Info, status.SeverityOf(session.FlashWarning))
}

func TestLatest(t *testing.T) {
	// Arrange
	flashes := []session.Flash{
		{Class: session.FlashInfo, Msg: "Processing secure connection..."},
		{Class: session.FlashError, Msg: "Connection failed"},
	}

	// Act
	actual, ok := status.Latest(flashes)

	// Assert
	require.True(t, ok)
	require.Equal(t, status.Errorf("Connection failed"), actual)

	_, ok = status.Latest(nil)
	require.False(t, ok)
}

func TestReporterReport(t *testing.T) {
	t.Run("Session", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)
		rep := status.NewReporter(logger.New(logger.WithLogger(log.New(b, "", 0))))

		s, _ := session.NewStub().GetSession(nil)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = r.WithContext(context.WithValue(r.Context(), connect.SessionKey, s))
		w := httptest.NewRecorder()

		// Act
		rep.Report(w, r, status.Infof("Processing secure connection..."))
		rep.Report(w, r, status.Successf("Connected successfully as %s! You can close this page.", "a@b.com"))

		// Assert
		require.Equal(t, []session.Flash{{
			Class: session.FlashSuccess,
			Msg:   "Connected successfully as a@b.com! You can close this page.",
		}}, s.Flashes(w, r))
		require.Contains(t, b.String(), "Processing secure connection...")
		require.Contains(t, b.String(), "a@b.com")
	})

	t.Run("No-Session", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)
		rep := status.NewReporter(logger.New(logger.WithLogger(log.New(b, "", 0))))
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		// Act
		require.NotPanics(t, func() {
			rep.Report(httptest.NewRecorder(), r, status.Errorf("Connection failed: %s. Please try again.", "boom"))
		})

		// Assert
		require.Contains(t, b.String(), "[ERROR]")
		require.Contains(t, b.String(), "Connection failed: boom. Please try again.")
	})
}

func TestReporterClear(t *testing.T) {
	// Arrange
	rep := status.NewReporter(logger.New(logger.WithLogger(log.New(new(bytes.Buffer), "", 0))))
	s, _ := session.NewStub().GetSession(nil)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), connect.SessionKey, s))
	w := httptest.NewRecorder()
	rep.Report(w, r, status.Errorf("old"))

	// Act
	rep.Clear(w, r)

	// Assert
	require.Empty(t, s.Flashes(w, r))
}
