package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEmptyReview      = errors.New("review cannot be empty")
	ErrNotAuthenticated = errors.New("you must be logged in")
	ErrAlreadyLiked     = errors.New("meal already liked")
	ErrInvalidResponse  = errors.New("invalid response from catalog")
	ErrRequired         = errors.New("is required")
)

// TransportError means the request never produced a usable response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a non-2xx answer from the catalog API.
type StatusError struct {
	Op      string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %d %s", e.Op, e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("%s: %d %s", e.Op, e.Code, e.Message)
}

// ValidationError is a local rejection. No request was sent.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

func required(field, value string) error {
	if value == "" {
		return invalid(field, ErrRequired)
	}
	return nil
}
