package weather

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrLocationDisabled = errors.New("location providers are disabled")
	ErrPermissionDenied = errors.New("location permission denied")
	ErrNoNetwork        = errors.New("no network connection")
)

// APIError is returned when the weather endpoint answers with a non-2xx status.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("weather API returned status code: %d (%s)", e.StatusCode, e.Reason())
}

// Reason buckets the status code for diagnostics only.
func (e *APIError) Reason() string {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return "bad connection"
	case http.StatusNotFound:
		return "not found"
	default:
		return "something went wrong"
	}
}

type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("weather API request failed: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("weather API returned malformed JSON: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
