// Package errors provides typed errors for the SOP RAG backend client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrEmptyQuery      = errors.New("query cannot be empty")
	ErrBusy            = errors.New("an exchange is already in flight")
	ErrInvalidResponse = errors.New("invalid response format")
)

// FallbackMessage is shown when no better error description exists.
const FallbackMessage = "An error occurred"

// APIError represents a non-success response from the backend.
// Message holds the human-readable text extracted from the error payload.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// NewAPIErrorWithBody creates an APIError retaining the raw response body.
func NewAPIErrorWithBody(statusCode int, endpoint, message, body string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
		Body:       body,
	}
}

// NetworkError represents a transport-level failure (request never produced
// a response).
type NetworkError struct {
	Op       string
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("network error during %s at %s: %v", e.Op, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// NewNetworkError creates a new NetworkError.
func NewNetworkError(op, endpoint string, err error) *NetworkError {
	return &NetworkError{Op: op, Endpoint: endpoint, Err: err}
}

// ParseError represents a response that could not be interpreted.
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with the ErrInvalidResponse sentinel.
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError.
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}

// IsAPIError reports whether err is (or wraps) an APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsNetworkError reports whether err is (or wraps) a NetworkError.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// GetHTTPStatus returns the HTTP status carried by err, or 0.
func GetHTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// GetEndpoint returns the endpoint the failing request targeted, or "".
func GetEndpoint(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Endpoint
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Endpoint
	}
	return ""
}

// GetResponseBody returns the raw error response body, or "".
func GetResponseBody(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Body
	}
	return ""
}

// DisplayMessage extracts the human-readable message from err: the text
// extracted from the error payload for API errors, the underlying cause for
// transport errors, err's own message otherwise, and FallbackMessage when
// nothing better exists.
func DisplayMessage(err error) string {
	if err == nil {
		return FallbackMessage
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) && netErr.Err != nil {
		return netErr.Err.Error()
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackMessage
}
