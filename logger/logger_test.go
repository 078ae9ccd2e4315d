package logger_test

import (
	"bytes"
	"errors"
	"log"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/connect/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`^\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger/logger_test\.go:\d+`)
)

func newTestLogger(b *bytes.Buffer) *log.Logger {
	return log.New(b, "", 0)
}

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		val      string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"debug", logger.LogLevelUnk},
		{"", logger.LogLevelUnk},
	} {
		t.Run(tc.val, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.val))
		})
	}
}

func TestConnectLogger(t *testing.T) {
	for _, tc := range []struct {
		name  string
		level logger.LogLevel
		fn    func(logger.Logger)
		tag   string
	}{
		{"Debug", logger.LogLevelDebug, func(l logger.Logger) { l.Debug("hi", nil) }, "[DEBUG]"},
		{"Info", logger.LogLevelDebug, func(l logger.Logger) { l.Info("hi", nil) }, "[INFO]"},
		{"Warn", logger.LogLevelDebug, func(l logger.Logger) { l.Warn("hi", nil) }, "[WARN]"},
		{"Error", logger.LogLevelDebug, func(l logger.Logger) { l.Error("hi", nil) }, "[ERROR]"},
		{"Fatal", logger.LogLevelDebug, func(l logger.Logger) { l.Fatal("hi", nil) }, "[FATAL]"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(tc.level))

			// Act
			tc.fn(l)

			// Assert
			out := b.String()
			require.Equal(t, tc.tag, logLevelRegexp.FindString(out))
			require.Regexp(t, fpRegexp, out)
			require.Contains(t, out, "'hi'")
		})
	}
}

func TestConnectLoggerLevel(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelWarn))

	// Act
	l.Debug("quiet", nil)
	l.Info("quiet", nil)

	// Assert
	require.Zero(t, b.Len())
	require.Equal(t, logger.LogLevelWarn, l.LogLevel())

	// Act
	l.Warn("loud", nil)

	// Assert
	require.Contains(t, b.String(), "'loud'")
}

func TestConnectLoggerUnkLevel(t *testing.T) {
	l := logger.New(logger.WithLevel(logger.LogLevelUnk))
	require.Equal(t, logger.LogLevelInfo, l.LogLevel())
}

func TestConnectLoggerLogContext(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	// Act
	l.Error("boom", &logger.LogContext{Caller: "signin/flow.go:12", Error: errors.New("bad")})

	// Assert
	require.Equal(t, "[ERROR] signin/flow.go:12 'boom' log_context: {\"error\":\"bad\"}\n", b.String())
}

func TestConnectLoggerAddSkip(t *testing.T) {
	// Arrange
	l := logger.New()

	// Act
	sl := l.AddSkip(3)

	// Assert
	require.Equal(t, 3, sl.Skip())
	require.Zero(t, l.Skip())
}
