/*
Package router registers HTTP routes on a thin wrapper around [mux.Router].

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
Before a request gets to a handler,
any middlewares added to the Route are called in the order they appear,
after those added with OnEveryRequest.

Every handler is wrapped with middleware.ReportPanic.
*/
package router
