package exchange

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/connect"
)

var (
	ErrBackend        = errors.New("backend rejected code")
	ErrDuplicate      = errors.New("code already submitted")
	ErrTransport      = errors.New("backend unreachable")
	ErrInvalidURL     = fmt.Errorf("%w: backend url is not a valid http(s) URL", connect.ErrBadConfig)
	ErrMissingURL     = fmt.Errorf("%w: backend url is not set", connect.ErrBadConfig)
	ErrPlaceholderURL = fmt.Errorf("%w: backend url is a placeholder", connect.ErrBadConfig)
)

// A ResponseError is a non-2xx answer from the backend.
type ResponseError struct {
	Status  int
	Message string
}

func (e *ResponseError) Error() string { return e.Message }

func (e *ResponseError) Unwrap() error { return ErrBackend }

// A TransportError is a failure to get any answer from the backend.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func (e *TransportError) Unwrap() error { return e.Err }

// Detail describes err for the user.
//
// ResponseError yields the backend's message, TransportError the transport's description.
func Detail(err error) string {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.Message
	}

	var te *TransportError
	if errors.As(err, &te) {
		return te.Error()
	}

	return err.Error()
}
