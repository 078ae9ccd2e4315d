/*
Package logger provides logging functionality to a connect app by defining the required behavior in [Logger]
and providing an implementation of it with [ConnectLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
[ConnectLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*ConnectLogger.Warn], [*ConnectLogger.Error], and [*ConnectLogger.Fatal] produce messages.

Log messages emitted by [ConnectLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/04/28 15:55:21 [INFO] connect/signin/flow.go:43 'google code client initialized' log_context: {"data":{"scopes":4}}

The log context is a JSON-encoded [LogContext].
Authorization codes and OAuth state in a logged request URL are masked.

# SentryLogger

[SentryLogger] wraps a [ConnectLogger], additionally reporting warnings and errors to Sentry.
*/
package logger
