package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for different categories
var (
	// ErrTransport - the HTTP round-trip itself failed (connection, DNS, timeout)
	ErrTransport = errors.New("transport error")

	// ErrMalformedResponse - the API returned JSON the codec cannot use (missing choices, unparsable body)
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNoContent - the winning choice carried neither tool calls nor text content
	ErrNoContent = errors.New("no content")

	// ErrAgentLoopExceeded - the iteration budget ran out before the model produced a final answer
	ErrAgentLoopExceeded = errors.New("agent loop exceeded")
)

// APIError carries a non-200 status and the server's error message or raw body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Status, e.Message)
}

// Wrap wraps an error with context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// MalformedResponse wraps a message as a malformed-response error.
func MalformedResponse(message string) error {
	return fmt.Errorf("%s: %w", message, ErrMalformedResponse)
}

// NoContent wraps a message as a no-content error.
func NoContent(message string) error {
	return fmt.Errorf("%s: %w", message, ErrNoContent)
}

// Transport wraps an external transport failure.
func Transport(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%v: %w", err, ErrTransport)
}

// IsCategory checks if error belongs to a specific category.
func IsCategory(err error, category error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, category)
}
