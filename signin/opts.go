package signin

import (
	"github.com/xy-planning-network/connect/exchange"
	"github.com/xy-planning-network/connect/google"
	"github.com/xy-planning-network/connect/logger"
	"github.com/xy-planning-network/connect/status"
)

// A FlowOptFn configures a Flow when constructing it.
type FlowOptFn func(*Flow)

// WithClientFactory replaces google.NewCodeClient when initializing.
func WithClientFactory(fn func(google.ClientConfig) (*google.CodeClient, error)) FlowOptFn {
	return func(f *Flow) {
		f.newClient = fn
	}
}

// WithExchanger sets where codes are submitted.
// Without one, every code is reported as a backend configuration error.
func WithExchanger(ex Exchanger) FlowOptFn {
	return func(f *Flow) {
		if ex != nil {
			f.exchanger = ex
		}
	}
}

func WithLogger(l logger.Logger) FlowOptFn {
	return func(f *Flow) {
		f.logger = l
	}
}

func WithReporter(rep *status.Reporter) FlowOptFn {
	return func(f *Flow) {
		f.reporter = rep
	}
}

// WithSeenCache sets the cache guarding against submitting a code twice.
// The default is an exchange.MemorySeenCache.
func WithSeenCache(c exchange.SeenCache) FlowOptFn {
	return func(f *Flow) {
		f.seen = c
	}
}
