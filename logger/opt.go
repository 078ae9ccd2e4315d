package logger

import "log"

// A LoggerOptFn is a functional option configuring a ConnectLogger when constructing a new one.
type LoggerOptFn func(*ConnectLogger)

// WithEnv sets the environment ConnectLogger is operating in.
func WithEnv(env string) LoggerOptFn {
	return func(l *ConnectLogger) {
		l.env = env
	}
}

// WithLevel sets the log level ConnectLogger uses.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *ConnectLogger) {
		if level == LogLevelUnk {
			return
		}

		l.ll = level
	}
}

// WithLogger sets the log.Logger ConnectLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *ConnectLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *ConnectLogger) {
		l.skip = skip
	}
}
