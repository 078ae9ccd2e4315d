package signin

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/exchange"
	"github.com/xy-planning-network/connect/google"
	"github.com/xy-planning-network/connect/http/session"
	"github.com/xy-planning-network/connect/logger"
	"github.com/xy-planning-network/connect/status"
)

// ConnectedKey marks a session whose Google account was connected.
const ConnectedKey = "connected"

// Status messages shown to the user.
const (
	MsgBackendConfig = "Configuration error: backend URL is not set correctly."
	MsgClientConfig  = "Configuration error: Google Client ID is invalid or not set."
	MsgClientInit    = "Critical error initializing Google authentication."
	MsgConnected     = "Connected successfully as %s! You can close this page."
	MsgDuplicate     = "This authorization code was already submitted."
	MsgFailed        = "Connection failed: %s. Please try again."
	MsgNotReady      = "Error: Google client not initialized. Reload the page."
	MsgProcessing    = "Processing secure connection..."
)

// An Exchanger hands an authorization code to the backend.
type Exchanger interface {
	Submit(ctx context.Context, code string) (exchange.Result, error)
}

// A Flow holds the Google client handle and what a connection needs across requests.
//
// A Flow is safe for concurrent use.
type Flow struct {
	cfg       google.ClientConfig
	exchanger Exchanger
	logger    logger.Logger
	newClient func(google.ClientConfig) (*google.CodeClient, error)
	reporter  *status.Reporter
	seen      exchange.SeenCache

	mu      sync.Mutex
	client  *google.CodeClient
	initErr error
}

// NewFlow constructs a *Flow for cfg. Call Init before serving requests.
func NewFlow(cfg google.ClientConfig, opts ...FlowOptFn) *Flow {
	f := &Flow{cfg: cfg, newClient: google.NewCodeClient}
	for _, opt := range opts {
		opt(f)
	}

	if f.logger == nil {
		f.logger = logger.New()
	}

	if f.reporter == nil {
		f.reporter = status.NewReporter(f.logger)
	}

	if f.seen == nil {
		f.seen = exchange.NewMemorySeenCache(exchange.SeenTTL)
	}

	return f
}

// Init constructs the Google client handle, reporting whether it succeeded.
// On failure, the error is logged and kept for InitMessage.
func (f *Flow) Init() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.logger.Debug("initializing google code client", nil)

	cc, err := f.newClient(f.cfg)
	if err != nil {
		f.client, f.initErr = nil, err
		f.logger.Error("could not initialize google code client", &logger.LogContext{Error: err})
		return false
	}

	f.client, f.initErr = cc, nil
	f.logger.Info("google code client initialized", &logger.LogContext{Data: map[string]any{"scopes": cc.Scopes()}})
	return true
}

// Client returns the Google client handle, if Init succeeded.
func (f *Flow) Client() (*google.CodeClient, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.client, f.client != nil
}

// Ready reports whether the Google client handle exists and a backend takes its codes.
func (f *Flow) Ready() bool {
	_, ok := f.Client()
	return ok && f.hasExchanger()
}

// InitMessage describes why the Flow is not Ready.
// A failed Init is described before a missing backend.
// ok is false when a backend is set and Init has not failed.
func (f *Flow) InitMessage() (msg status.Message, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case errors.Is(f.initErr, connect.ErrBadConfig):
		return status.Errorf(MsgClientConfig), true
	case f.initErr != nil:
		return status.Errorf(MsgClientInit), true
	case f.exchanger == nil:
		return status.Errorf(MsgBackendConfig), true
	default:
		return status.Message{}, false
	}
}

func (f *Flow) hasExchanger() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exchanger != nil
}

// Exchange submits code to the backend once,
// reporting progress and the result in the request's session.
func (f *Flow) Exchange(w http.ResponseWriter, r *http.Request, code string) bool {
	if !f.hasExchanger() {
		f.reporter.Report(w, r, status.Errorf(MsgBackendConfig))
		return false
	}

	if err := exchange.Dedup(r.Context(), f.seen, code); err != nil {
		if errors.Is(err, exchange.ErrDuplicate) {
			f.reporter.Report(w, r, status.Errorf(MsgDuplicate))
			return false
		}

		f.logger.Error(err.Error(), &logger.LogContext{Request: r, Error: err})
		f.reporter.Report(w, r, status.Errorf(MsgFailed, "internal error"))
		return false
	}

	f.reporter.Report(w, r, status.Infof(MsgProcessing))

	res, err := f.exchanger.Submit(r.Context(), code)
	if err != nil {
		f.reporter.Report(w, r, status.Errorf(MsgFailed, exchange.Detail(err)))
		return false
	}

	f.reporter.Report(w, r, status.Successf(MsgConnected, res.DisplayName))

	if s, ok := r.Context().Value(connect.SessionKey).(session.Session); ok {
		if err := s.Set(w, r, ConnectedKey, true); err != nil {
			f.logger.Error("could not mark session connected", &logger.LogContext{Request: r, Error: err})
		}
	}

	return true
}
