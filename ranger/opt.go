package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/connect/exchange"
	"github.com/xy-planning-network/connect/http/session"
	"github.com/xy-planning-network/connect/logger"
	"github.com/xy-planning-network/connect/signin"
)

// An Option configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some Options require components New builds from defaults,
// so an OptFollowup can be returned in order to be called once those exist.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithServer is an example of the second.
// The *http.Server is replaced only when the closure it returns is called,
// after the router it serves exists.
type Option func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithConfig uses cfg instead of reading the environment.
func WithConfig(cfg AppConfig) Option {
	return func(rng *Ranger) (OptFollowup, error) {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		rng.cfg = &cfg
		return nil, nil
	}
}

// WithContext exposes the provided context.Context to the app.
func WithContext(ctx context.Context) Option {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.ctx = ctx
		return nil, nil
	}
}

// WithExchanger hands authorization codes to ex instead of
// the *exchange.Submitter built from BACKEND_EXCHANGE_URL.
func WithExchanger(ex signin.Exchanger) Option {
	return func(rng *Ranger) (OptFollowup, error) {
		if ex == nil {
			return nil, fmt.Errorf("nil Exchanger")
		}

		rng.exchanger = ex
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the app.
func WithLogger(l logger.Logger) Option {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.l = l
		return nil, nil
	}
}

// WithSeenCache remembers submitted codes in c.
func WithSeenCache(c exchange.SeenCache) Option {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.seen = c
		return nil, nil
	}
}

// WithSessionStore exposes the session.SessionStorer to the app.
func WithSessionStore(store session.SessionStorer) Option {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.sessions = store
		return nil, nil
	}
}

// WithServer constructs a followup option that, when called,
// replaces the default *http.Server with s, serving the app's router.
func WithServer(s *http.Server) Option {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			if s == nil {
				return fmt.Errorf("nil *http.Server")
			}

			s.Handler = rng.Router
			rng.srv = s
			rng.l.Debug(fmt.Sprintf("using server listening on %s", s.Addr), nil)

			return nil
		}, nil
	}
}
