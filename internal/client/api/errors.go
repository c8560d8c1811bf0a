package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Error is a backend error carrying the human-readable message from the
// response body. It wraps one of the sentinels above when the status code
// maps to one, so callers can use errors.Is while still surfacing Message.
type Error struct {
	Status  int
	Message string
	wrapped error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

func (e *Error) Unwrap() error { return e.wrapped }

func newError(status int, message string) *Error {
	e := &Error{Status: status, Message: message}
	switch status {
	case 401:
		e.wrapped = ErrUnauthorized
	case 404:
		e.wrapped = ErrNotFound
	}
	return e
}

// MessageFor extracts a user-facing message from err. Transport-level
// failures collapse to a generic message; backend errors surface verbatim.
func MessageFor(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "something went wrong, please try again"
}
