package exchange

import (
	"net/http"

	"github.com/xy-planning-network/connect/logger"
)

// A SubmitterOptFn configures a Submitter when constructing it.
type SubmitterOptFn func(*Submitter)

// WithClient sets the *http.Client requests are sent with.
func WithClient(c *http.Client) SubmitterOptFn {
	return func(s *Submitter) {
		s.client = c
	}
}

// WithLogger sets the logger.Logger submissions are logged with.
func WithLogger(l logger.Logger) SubmitterOptFn {
	return func(s *Submitter) {
		s.logger = l
	}
}
