/*
Package middleware defines what a middleware is and a set of basic middlewares.

The available middlewares are:
  - CORS
  - ForceHTTPS
  - InjectIPAddress
  - InjectSession
  - LogRequest
  - RateLimit
  - RequestID

ReportPanic differs from the rest in that it wraps an http.HandlerFunc.

A typical chain, applied to every request, looks like:

	adpts := []middleware.Adapter{
		middleware.InjectIPAddress(),
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.LogRequest(log),
		middleware.InjectSession(sessionStore),
	}
*/
package middleware
