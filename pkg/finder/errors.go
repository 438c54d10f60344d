package finder

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSubmitInFlight is returned when Submit is called while a submission is
// still running.
var ErrSubmitInFlight = errors.New("finder: submission already in flight")

// StatusError is a non-2xx response from the search endpoint. Message holds
// the server-provided error text when the body carried one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! Status: %d", e.StatusCode())
}

// StatusCode returns the HTTP status, defaulting to 500.
func (e *StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// TransportError wraps a request that never completed.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError wraps a success body that could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }
