package google

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/connect"
)

var (
	ErrClientIDSuffix      = fmt.Errorf("%w: client id must end with "+ClientIDSuffix, connect.ErrBadConfig)
	ErrMissingClientID     = fmt.Errorf("%w: client id is not set", connect.ErrBadConfig)
	ErrPlaceholderClientID = fmt.Errorf("%w: client id is a placeholder", connect.ErrBadConfig)

	// ErrInit signals constructing the client failed unexpectedly.
	ErrInit = errors.New("critical failure initializing google client")
)
