package model

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMalformedToken signals a login response token whose expiry
	// claim is missing or unparseable.
	ErrMalformedToken = errors.New("token expiry claim missing or unparseable")
	// ErrAuthExpired is internal; it triggers a forced logout and is
	// never surfaced to the UI as a thrown error.
	ErrAuthExpired = errors.New("authentication expired")
)

// GenericErrorMessage is shown when the server payload carries no
// message of its own.
const GenericErrorMessage = "Something went wrong"

// NetworkError describes a transport or server failure.
type NetworkError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ValidationError carries the first server-reported field error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a server 404.
func IsNotFound(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr) && netErr.StatusCode == http.StatusNotFound
}

// UserMessage extracts the user-facing message from an operation
// failure, falling back to the generic one.
func UserMessage(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) && validationErr.Message != "" {
		return validationErr.Message
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) && netErr.Message != "" {
		return netErr.Message
	}
	return GenericErrorMessage
}
