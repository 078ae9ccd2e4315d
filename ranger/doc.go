/*
Package ranger initializes and manages the connect app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type, constructed with [New].
[New] reads an [AppConfig] from the environment unless [WithConfig] provides one,
builds every component no [Option] supplied, and initializes the Google client handle.

[*Ranger.Guide] begins the web server.
By default, [*Ranger.Guide] listens on [DefaultPort] (:3000),
assuming a reverse proxy forwards requests for BASE_URL.
Stop that web server with [*Ranger.Shutdown] or send a signal [*Ranger.Guide] listens for.

These routes are served:

	GET     /                      the connect page
	GET     /auth/google           redirect to Google's consent screen, rate limited per IP
	GET     /auth/google/callback  where Google returns the authorization code
	GET     /api/status            readiness and connection state as JSON, CORS allowed for BASE_URL
	OPTIONS /api/status

# Configuration

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - APP_TITLE: a short title for the application; default: Connect Google
  - BACKEND_EXCHANGE_URL: the URL authorization codes are POSTed to
  - BASE_URL: the base URL the application runs on; default: http://localhost:3000
  - CONTACT_US_EMAIL: the email address end users can contact XYPN at; default: hello@xyplanningnetwork.com
  - ENVIRONMENT: the environment the application is running in; cf. [connect.Environment]
  - GOOGLE_CLIENT_ID: the OAuth client ID, ending in .apps.googleusercontent.com
  - GOOGLE_CLIENT_SECRET: the OAuth client secret
  - GOOGLE_REDIRECT_URL: where Google returns to; default: BASE_URL/auth/google/callback
  - GOOGLE_SCOPES: comma-separated scopes to request; default: [google.DefaultScopes]
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - REDIS_URL: a redis:// URL; when set, sessions and submitted codes are kept in Redis
  - REDIS_PASSWORD: overrides any password in REDIS_URL
  - SENTRY_DSN: when set, errors are reported to Sentry
  - SERVER_IDLE_TIMEOUT: the timeout, as understood by [time.ParseDuration], for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout for writing HTTP responses; default: 5s
  - SESSION_AUTH_KEY: a hex-encoded key for authenticating cookies; cf. [encoding/hex]
  - SESSION_ENCRYPTION_KEY: a hex-encoded key for encrypting cookies; cf. [encoding/hex]

A missing or placeholder GOOGLE_CLIENT_ID or BACKEND_EXCHANGE_URL does not stop the app:
the connect page shows the configuration error instead.
*/
package ranger
