package store

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidBaseURL = errors.New("invalid base url")
	ErrNotProvided    = errors.New("code store is not provided in context")
	ErrEmptyKey       = errors.New("code key is empty")
	ErrTransport      = errors.New("code store transport failure")
	ErrStatus         = errors.New("code store returned unexpected status")
	ErrNotFound       = errors.New("code not found")
	ErrDecode         = errors.New("failed to decode code store response")
)

// StatusError is returned for any response outside the 2xx range.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}

// Is reports 404 responses as ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
