// Package status reports progress of a connection to the user and to the logs.
package status

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/http/session"
	"github.com/xy-planning-network/connect/logger"
)

// Severity decides how a Message is colored and logged.
type Severity string

const (
	Info    Severity = session.FlashInfo
	Success Severity = session.FlashSuccess
	Error   Severity = session.FlashError
)

var _ connect.Enumerable = Severity("")

// SeverityOf maps a session.Flash class back to its Severity, defaulting to Info.
func SeverityOf(class string) Severity {
	s := Severity(class)
	if s.Valid() != nil {
		return Info
	}
	return s
}

func (s Severity) String() string { return string(s) }

func (s Severity) Valid() error {
	switch s {
	case Info, Success, Error:
		return nil
	default:
		return fmt.Errorf("%w: Severity %q", connect.ErrNotValid, string(s))
	}
}

// Color returns the CSS color the status-message element is rendered in.
func (s Severity) Color() string {
	switch s {
	case Success:
		return "#28a745"
	case Error:
		return "#dc3545"
	default:
		return "#007bff"
	}
}

// A Message is one line of status shown to the user.
type Message struct {
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

func Infof(format string, args ...any) Message {
	return Message{Text: fmt.Sprintf(format, args...), Severity: Info}
}

func Successf(format string, args ...any) Message {
	return Message{Text: fmt.Sprintf(format, args...), Severity: Success}
}

func Errorf(format string, args ...any) Message {
	return Message{Text: fmt.Sprintf(format, args...), Severity: Error}
}

// Color is the CSS color of the Message.
func (m Message) Color() string { return m.Severity.Color() }

// Flash converts the Message into a session.Flash.
func (m Message) Flash() session.Flash {
	return session.Flash{Class: m.Severity.String(), Msg: m.Text}
}

// Latest returns the Message for the last of flashes.
// ok is false when there are none.
func Latest(flashes []session.Flash) (msg Message, ok bool) {
	if len(flashes) == 0 {
		return Message{}, false
	}

	f := flashes[len(flashes)-1]
	return Message{Text: f.Msg, Severity: SeverityOf(f.Class)}, true
}

// A Reporter shows Messages through the request's session and mirrors them to a logger.Logger.
type Reporter struct {
	logger logger.Logger
}

// NewReporter constructs a *Reporter.
func NewReporter(l logger.Logger) *Reporter {
	if l == nil {
		l = logger.New()
	}

	if sl, ok := l.(logger.SkipLogger); ok {
		l = sl.AddSkip(sl.Skip() + 1)
	}

	return &Reporter{logger: l}
}

// Report replaces any pending Message with msg.
//
// Without a session in the request only the log is written.
func (rep *Reporter) Report(w http.ResponseWriter, r *http.Request, msg Message) {
	ctx := &logger.LogContext{Request: r, Data: map[string]any{"severity": msg.Severity.String()}}
	if msg.Severity == Error {
		rep.logger.Error(msg.Text, ctx)
	} else {
		rep.logger.Info(msg.Text, ctx)
	}

	s, ok := sessionFrom(r.Context())
	if !ok {
		rep.logger.Warn("no session to report status in", &logger.LogContext{Request: r})
		return
	}

	s.ClearFlashes(w, r)
	if err := s.SetFlash(w, r, msg.Flash()); err != nil {
		rep.logger.Error("could not save status", &logger.LogContext{Request: r, Error: err})
	}
}

// Clear drops any pending Message.
func (rep *Reporter) Clear(w http.ResponseWriter, r *http.Request) {
	if s, ok := sessionFrom(r.Context()); ok {
		s.ClearFlashes(w, r)
	}
}

func sessionFrom(ctx context.Context) (session.Session, bool) {
	s, ok := ctx.Value(connect.SessionKey).(session.Session)
	return s, ok
}
