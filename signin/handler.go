package signin

import (
	"embed"
	html "html/template"
	"net/http"

	"github.com/google/uuid"

	"github.com/xy-planning-network/connect/google"
	"github.com/xy-planning-network/connect/http/resp"
	"github.com/xy-planning-network/connect/http/session"
	"github.com/xy-planning-network/connect/http/template"
	"github.com/xy-planning-network/connect/logger"
	"github.com/xy-planning-network/connect/status"
)

// Template paths within Templates.
const (
	ConnectTmpl = "tmpl/connect.tmpl"
	LayoutTmpl  = "tmpl/layout.tmpl"
)

// Templates holds the pages Handler renders.
//
//go:embed tmpl/*
var Templates embed.FS

// A Handler serves the sign-in page and the routes the Google consent flow goes through.
type Handler struct {
	flow     *Flow
	logger   logger.Logger
	reporter *status.Reporter
	*resp.Responder
}

// NewHandler constructs a *Handler.
//
// The functions the templates need are added to p.
// The Responder must be configured with p and LayoutTmpl.
func NewHandler(flow *Flow, p template.Parser, d *resp.Responder) *Handler {
	p.AddFn("statusStyle", statusStyle)
	p.AddFn("latestStatus", latestStatus)

	return &Handler{
		flow:      flow,
		logger:    flow.logger,
		reporter:  flow.reporter,
		Responder: d,
	}
}

type pageData struct {
	Connected bool
	Ready     bool

	// Status is shown when no flash is pending.
	Status *status.Message
}

// Page renders the connect control and the latest status.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	data := pageData{Connected: h.connected(r), Ready: h.flow.Ready()}
	if msg, ok := h.flow.InitMessage(); ok {
		data.Status = &msg
	}

	if err := h.Html(w, r, resp.Layout(), resp.Tmpls(ConnectTmpl), resp.Data(data)); err != nil {
		h.logger.Error("could not render connect page", &logger.LogContext{Request: r, Error: err})
	}
}

// Start sends the browser to Google's consent screen.
//
// Without a backend to hand the code to, the browser returns to the page showing the configuration error.
// Without a client handle, one attempt is made to initialize it first;
// if that fails too, the browser returns to the page showing the configuration error.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	if !h.flow.hasExchanger() {
		h.reporter.Report(w, r, status.Errorf(MsgBackendConfig))
		h.redirect(w, r, resp.ToRoot())
		return
	}

	client, ok := h.flow.Client()
	if !ok {
		h.reporter.Report(w, r, status.Errorf(MsgNotReady))
		if !h.flow.Init() {
			if msg, ok := h.flow.InitMessage(); ok {
				h.reporter.Report(w, r, msg)
			}
			h.redirect(w, r, resp.ToRoot())
			return
		}

		client, _ = h.flow.Client()
	}

	h.reporter.Clear(w, r)

	// NOTE: state is not checked on return.
	h.redirect(w, r, resp.Url(client.RequestCode(uuid.NewString())))
}

// Callback receives Google's answer, submits any code to the backend
// and returns the browser to the page.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	outcome := google.ParseCallback(r.URL.Query())
	h.logger.Debug("google callback", &logger.LogContext{
		Request: r,
		Data:    map[string]any{"outcome": outcome.Kind.String()},
	})

	if outcome.Kind == google.OutcomeCode {
		h.flow.Exchange(w, r, outcome.Code)
	} else {
		h.reporter.Report(w, r, status.Errorf("%s", outcome.Message()))
	}

	h.redirect(w, r, resp.ToRoot())
}

type statusJSON struct {
	Connected bool            `json:"connected"`
	Ready     bool            `json:"ready"`
	Status    *status.Message `json:"status,omitempty"`
}

// StatusJSON reports whether the client is ready and the session connected.
// Pending flashes are left for the page to show.
func (h *Handler) StatusJSON(w http.ResponseWriter, r *http.Request) {
	data := statusJSON{Connected: h.connected(r), Ready: h.flow.Ready()}
	if msg, ok := h.flow.InitMessage(); ok {
		data.Status = &msg
	}

	if err := h.Json(w, r, resp.Data(data)); err != nil {
		h.logger.Error("could not write status", &logger.LogContext{Request: r, Error: err})
	}
}

// NotFound sends the browser back to the page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.redirect(w, r, resp.ToRoot())
}

func (h *Handler) connected(r *http.Request) bool {
	s, err := h.Session(r.Context())
	if err != nil {
		return false
	}

	connected, _ := s.Get(ConnectedKey).(bool)
	return connected
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, to resp.Fn) {
	if err := h.Redirect(w, r, to); err != nil {
		h.Err(w, r, err)
	}
}

// statusStyle renders the inline style of the status-message element.
func statusStyle(m *status.Message) html.CSS {
	if m == nil {
		return ""
	}

	return html.CSS("color: " + m.Color())
}

// latestStatus picks the Message to show: the last flash, else fallback.
func latestStatus(flashes []session.Flash, fallback *status.Message) *status.Message {
	if msg, ok := status.Latest(flashes); ok {
		return &msg
	}

	return fallback
}

