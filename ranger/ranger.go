package ranger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/joho/godotenv/autoload"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/exchange"
	"github.com/xy-planning-network/connect/http/resp"
	"github.com/xy-planning-network/connect/http/router"
	"github.com/xy-planning-network/connect/http/session"
	"github.com/xy-planning-network/connect/logger"
	"github.com/xy-planning-network/connect/signin"
)

// A Ranger manages and exposes all components of the connect app to one another.
type Ranger struct {
	*resp.Responder
	*router.Router

	cfg       *AppConfig
	ctx       context.Context
	exchanger signin.Exchanger
	flow      *signin.Flow
	handler   *signin.Handler
	l         logger.Logger
	rdb       *redis.Client
	seen      exchange.SeenCache
	sessions  session.SessionStorer
	srv       *http.Server
	url       *url.URL
}

// New constructs a Ranger from the provided options.
// Options are applied first; New then builds defaults for every component
// the options left unset, and finally calls each OptFollowup.
//
// The Google client handle is initialized before New returns.
// Failing to do so does not fail New: the page reports the problem instead.
func New(opts ...Option) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	for _, opt := range opts {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", connect.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if err := r.build(); err != nil {
		return nil, err
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", connect.ErrBadConfig, err)
		}
	}

	r.flow.Init()

	return r, nil
}

// build fills in each component not already set by an Option.
// Order matters: later components depend on earlier ones.
func (r *Ranger) build() error {
	if r.cfg == nil {
		cfg, err := ParseConfig()
		if err != nil {
			return err
		}

		r.cfg = &cfg
	}

	cfg := *r.cfg
	r.url = cfg.URL()

	if r.ctx == nil {
		r.ctx = context.Background()
	}

	if r.l == nil {
		r.l = defaultLogger(cfg)
	}

	var err error
	if r.sessions == nil || r.seen == nil {
		if r.rdb, err = defaultRedis(cfg); err != nil {
			return err
		}
	}

	if r.sessions == nil {
		if r.sessions, err = defaultSessionStore(cfg, r.rdb); err != nil {
			return err
		}
	}

	if r.seen == nil {
		r.seen = defaultSeenCache(r.rdb)
	}

	if r.exchanger == nil {
		r.exchanger = defaultExchanger(cfg, r.l)
	}

	flowOpts := []signin.FlowOptFn{signin.WithLogger(r.l), signin.WithSeenCache(r.seen)}
	if r.exchanger != nil {
		flowOpts = append(flowOpts, signin.WithExchanger(r.exchanger))
	}
	r.flow = signin.NewFlow(cfg.GoogleConfig(), flowOpts...)

	p := defaultParser(cfg)
	r.Responder = defaultResponder(cfg, r.l, p)
	r.handler = signin.NewHandler(r.flow, p, r.Responder)
	r.Router = defaultRouter(cfg, r.l, r.sessions, r.handler)

	r.srv = defaultServer(r.ctx, cfg)
	r.srv.Handler = r.Router

	return nil
}

func (r *Ranger) EmitConfig() AppConfig                   { return *r.cfg }
func (r *Ranger) EmitFlow() *signin.Flow                  { return r.flow }
func (r *Ranger) EmitLogger() logger.Logger               { return r.l }
func (r *Ranger) EmitSessionStore() session.SessionStorer { return r.sessions }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - os.Kill
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ctx, cancel := context.WithCancel(r.ctx)
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		os.Kill,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			cancel()
		case <-ctx.Done():
		}
	}()

	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s, serving %s", r.srv.Addr, r.url), nil)
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), nil)
			cancel()
		}
	}()

	<-ctx.Done()
	return r.Shutdown()
}

// Shutdown shutdowns the web server and closes the Redis connection, if any.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	if r.rdb != nil {
		if err := r.rdb.Close(); err != nil {
			r.l.Warn("could not close redis client", &logger.LogContext{Error: err})
		}
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}
