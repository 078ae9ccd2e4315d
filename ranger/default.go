package ranger

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/exchange"
	"github.com/xy-planning-network/connect/http/middleware"
	"github.com/xy-planning-network/connect/http/resp"
	"github.com/xy-planning-network/connect/http/router"
	"github.com/xy-planning-network/connect/http/session"
	"github.com/xy-planning-network/connect/http/template"
	"github.com/xy-planning-network/connect/logger"
	"github.com/xy-planning-network/connect/signin"
)

const (
	defaultErrTmpl = "tmpl/error.tmpl"
	sessionMaxAge  = 3600 * 24 * 7
)

// defaultLogger constructs the logger.Logger configured for use in the application.
// When SENTRY_DSN is set, errors are shipped to Sentry as well.
func defaultLogger(cfg AppConfig) logger.Logger {
	cl := logger.New(
		logger.WithEnv(cfg.Environment.String()),
		logger.WithLevel(logger.NewLogLevel(cfg.LogLevel)),
	)
	cl.Debug("setting up app logger", nil)

	if cfg.SentryDSN == "" {
		return cl
	}

	l := logger.NewSentryLogger(cl, cfg.SentryDSN)
	l.Debug("using SentryLogger for app logger", nil)

	return l
}

// defaultRedis connects to the Redis server at REDIS_URL.
// A nil *redis.Client returns if REDIS_URL is not set.
func defaultRedis(cfg AppConfig) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("%w: REDIS_URL: %s", connect.ErrBadConfig, err)
	}

	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}

	return redis.NewClient(opts), nil
}

// defaultSessionStore constructs the SessionStorer status flashes and the connected flag live in.
//
// Sessions are kept in Redis when rdb is not nil, otherwise in cookies.
func defaultSessionStore(cfg AppConfig, rdb *redis.Client) (session.SessionStorer, error) {
	sc := session.Config{
		AuthKey:     cfg.SessionAuthKey,
		EncryptKey:  cfg.SessionEncryptKey,
		Env:         cfg.Environment,
		SessionName: cfg.SessionName(),
	}

	args := []session.ServiceOpt{session.WithMaxAge(sessionMaxAge)}
	if rdb != nil {
		ro := rdb.Options()
		args = append(args, session.WithRedis(ro.Addr, ro.Password))
	} else {
		args = append(args, session.WithCookie())
	}

	return session.NewStoreService(sc, args...)
}

// defaultSeenCache remembers submitted codes in Redis when available,
// otherwise in memory.
func defaultSeenCache(rdb *redis.Client) exchange.SeenCache {
	if rdb != nil {
		return exchange.NewRedisSeenCache(rdb, exchange.SeenTTL)
	}

	return exchange.NewMemorySeenCache(exchange.SeenTTL)
}

// defaultExchanger constructs the *exchange.Submitter for BACKEND_EXCHANGE_URL.
//
// A bad URL is logged and no Exchanger returns;
// the app keeps serving and reports the problem when a code comes back.
func defaultExchanger(cfg AppConfig, l logger.Logger) signin.Exchanger {
	sub, err := exchange.NewSubmitter(cfg.BackendExchangeURL, exchange.WithLogger(l))
	if err != nil {
		l.Error("backend exchange URL is not usable", &logger.LogContext{Error: err})
		return nil
	}

	return sub
}

// defaultParser constructs the *template.Parse pages render with.
//
// defaultParser makes available these functions in an HTML template:
//
//   - "env"
//   - "title" returns the value set by the APP_TITLE env var
//
// The *resp.Responder and the *signin.Handler add their own.
func defaultParser(cfg AppConfig) *template.Parse {
	return template.NewParser(
		template.WithFS(signin.Templates),
		template.WithFn(template.Env(cfg.Environment)),
		template.WithFn(template.Title(cfg.AppTitle)),
	)
}

// defaultResponder configures the [*resp.Responder] to be used by http.Handlers.
func defaultResponder(cfg AppConfig, l logger.Logger, p template.Parser) *resp.Responder {
	return resp.NewResponder(
		resp.WithContactErrMsg(fmt.Sprintf(session.ContactUsErr, cfg.ContactUs)),
		resp.WithErrTemplate(defaultErrTmpl),
		resp.WithLayoutTemplate(signin.LayoutTmpl),
		resp.WithLogger(l),
		resp.WithParser(p),
		resp.WithRootUrl(cfg.URL().String()),
	)
}

// defaultRouter constructs the [*router.Router] serving the connect page and its routes.
func defaultRouter(
	cfg AppConfig,
	l logger.Logger,
	sessions session.SessionStorer,
	h *signin.Handler,
) *router.Router {
	logReq := middleware.LogRequest(l)

	route := router.New(cfg.Environment, logReq)
	route.OnEveryRequest(
		middleware.InjectIPAddress(),
		middleware.ForceHTTPS(cfg.Environment),
		middleware.RequestID(),
		logReq,
		middleware.InjectSession(sessions),
	)

	route.HandleRoutes([]router.Route{
		{Path: "/", Method: http.MethodGet, Handler: h.Page},
		{
			Path:        "/auth/google",
			Method:      http.MethodGet,
			Handler:     h.Start,
			Middlewares: []middleware.Adapter{middleware.RateLimit(middleware.NewVisitors())},
		},
		{Path: "/auth/google/callback", Method: http.MethodGet, Handler: h.Callback},
	})

	api := route.Subrouter("/api")
	api.HandleRoutes(
		[]router.Route{
			{Path: "/status", Method: http.MethodGet, Handler: h.StatusJSON},
			{Path: "/status", Method: http.MethodOptions, Handler: h.StatusJSON},
		},
		middleware.CORS(cfg.Origin()),
	)

	route.HandleNotFound(notFound(cfg.URL(), h))

	return route
}

// notFound sends browsers asking for a page back to the connect page.
// Anything else gets a bare 404.
func notFound(base *url.URL, h *signin.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Accept"), "text/html") && r.URL.Path != base.Path {
			h.NotFound(w, r)
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context, cfg AppConfig) *http.Server {
	srv := &http.Server{
		Addr:         cfg.ServerAddr(),
		IdleTimeout:  orDuration(cfg.ServerIdleTimeout, DefaultServerIdleTimeout),
		ReadTimeout:  orDuration(cfg.ServerReadTimeout, DefaultServerReadTimeout),
		WriteTimeout: orDuration(cfg.ServerWriteTimeout, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

func orDuration(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}

	return d
}
