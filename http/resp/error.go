package resp

import (
	"errors"

	"github.com/xy-planning-network/connect"
)

var (
	ErrBadConfig   = connect.ErrBadConfig
	ErrDone        = errors.New("request ctx done")
	ErrInvalid     = connect.ErrNotValid
	ErrMissingData = connect.ErrMissingData
	ErrNotFound    = connect.ErrNotExist
)
