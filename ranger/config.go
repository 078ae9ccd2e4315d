package ranger

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/google"
)

const (
	DefaultHost               = "localhost"
	DefaultPort               = ":3000"
	DefaultServerIdleTimeout  = 120 * time.Second
	DefaultServerReadTimeout  = 5 * time.Second
	DefaultServerWriteTimeout = 5 * time.Second

	callbackPath  = "/auth/google/callback"
	sessionPrefix = "connect-"
)

var (
	punctRe = regexp.MustCompile(`[,':]`)
	spaceRe = regexp.MustCompile(`\s`)
)

// An AppConfig holds the values read from the environment at startup.
// Confer the package documentation for each environment variable.
//
// The Google client ID and the backend exchange URL are not validated here:
// when either is wrong the app still serves its page and reports the problem there.
type AppConfig struct {
	Environment connect.Environment `env:"ENVIRONMENT" envDefault:"DEVELOPMENT"`
	AppTitle    string              `env:"APP_TITLE" envDefault:"Connect Google"`
	BaseURL     string              `env:"BASE_URL" envDefault:"http://localhost:3000" validate:"required,url"`
	ContactUs   string              `env:"CONTACT_US_EMAIL" envDefault:"hello@xyplanningnetwork.com" validate:"omitempty,email"`
	Port        string              `env:"PORT" envDefault:":3000"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"INFO"`
	SentryDSN string `env:"SENTRY_DSN"`

	SessionAuthKey    string `env:"SESSION_AUTH_KEY" validate:"required,hexadecimal"`
	SessionEncryptKey string `env:"SESSION_ENCRYPTION_KEY" validate:"omitempty,hexadecimal"`

	RedisURL      string `env:"REDIS_URL" validate:"omitempty,url"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	GoogleClientID     string   `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string   `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string   `env:"GOOGLE_REDIRECT_URL" validate:"omitempty,url"`
	GoogleScopes       []string `env:"GOOGLE_SCOPES" envSeparator:","`

	BackendExchangeURL string `env:"BACKEND_EXCHANGE_URL"`

	ServerIdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ServerReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	ServerWriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"5s"`
}

// ParseConfig reads an AppConfig from the process environment.
func ParseConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("%w: parse env: %s", connect.ErrBadConfig, err)
	}

	return cfg, cfg.Validate()
}

// ParseConfigFrom reads an AppConfig from vars instead of the process environment.
func ParseConfigFrom(vars map[string]string) (AppConfig, error) {
	var cfg AppConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return AppConfig{}, fmt.Errorf("%w: parse env: %s", connect.ErrBadConfig, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the values the app cannot start without.
func (c AppConfig) Validate() error {
	if err := c.Environment.Valid(); err != nil {
		return fmt.Errorf("%w: ENVIRONMENT %q", connect.ErrBadConfig, c.Environment)
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %s", connect.ErrBadConfig, err)
	}

	return nil
}

// URL parses BaseURL, falling back to DefaultHost and DefaultPort.
func (c AppConfig) URL() *url.URL {
	u, err := url.ParseRequestURI(c.BaseURL)
	if err != nil || u.Host == "" {
		return &url.URL{Scheme: "http", Host: DefaultHost + DefaultPort}
	}

	return u
}

// Origin is the scheme and host of BaseURL, the form CORS compares against.
func (c AppConfig) Origin() string {
	u := c.URL()
	return u.Scheme + "://" + u.Host
}

// GoogleConfig assembles the google.ClientConfig.
//
// Without GOOGLE_REDIRECT_URL, Google redirects back to BASE_URL's callback route.
// Without GOOGLE_SCOPES, google.DefaultScopes are requested.
func (c AppConfig) GoogleConfig() google.ClientConfig {
	redirect := c.GoogleRedirectURL
	if redirect == "" {
		redirect = c.URL().JoinPath(callbackPath).String()
	}

	scopes := make([]string, 0, len(c.GoogleScopes))
	for _, s := range c.GoogleScopes {
		if s != "" {
			scopes = append(scopes, s)
		}
	}

	if len(scopes) == 0 {
		scopes = google.DefaultScopes()
	}

	return google.ClientConfig{
		ClientID:     c.GoogleClientID,
		ClientSecret: c.GoogleClientSecret,
		RedirectURL:  redirect,
		Scopes:       scopes,
	}
}

// SessionName derives the session cookie name from APP_TITLE,
// e.g., "Connect: Bob's Google" becomes "connect-connect-bobs-google".
func (c AppConfig) SessionName() string {
	name := cases.Lower(language.English).String(c.AppTitle)
	name = punctRe.ReplaceAllString(name, "")
	name = spaceRe.ReplaceAllString(name, "-")
	return sessionPrefix + name
}

// ServerAddr normalizes PORT into an address net/http can listen on.
func (c AppConfig) ServerAddr() string {
	port := c.Port
	if port == "" {
		return DefaultPort
	}

	if port[0] != ':' {
		port = ":" + port
	}

	return port
}
