// Package errors provides the terminal error taxonomy for the submission pipeline.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConfigurationMissing    ErrorCode = "CONFIGURATION_MISSING"
	ErrCodeTransportFailed         ErrorCode = "TRANSPORT_FAILED"
	ErrCodeProtocolError           ErrorCode = "PROTOCOL_ERROR"
	ErrCodeResponseFormatInvalid   ErrorCode = "RESPONSE_FORMAT_INVALID"
	ErrCodeResponseShapeUnexpected ErrorCode = "RESPONSE_SHAPE_UNEXPECTED"
)

// StandardError represents a structured submission error. Every category is
// terminal for the run: a single invocation never retries.
type StandardError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	Diagnostic string    `json:"-"`
	Retryable  bool      `json:"retryable"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewConfigurationMissingError reports every missing environment variable, not
// just the first.
func NewConfigurationMissingError(missing []string) *StandardError {
	joined := strings.Join(missing, ", ")
	return &StandardError{
		Code:       ErrCodeConfigurationMissing,
		Message:    "Required environment variables are missing",
		Details:    joined,
		Diagnostic: fmt.Sprintf("Missing required environment variables: %s", joined),
		Retryable:  false,
		Timestamp:  time.Now().UTC(),
	}
}

// NewTransportFailedError wraps a network-level failure (DNS, connection, timeout).
func NewTransportFailedError(err error) *StandardError {
	return &StandardError{
		Code:       ErrCodeTransportFailed,
		Message:    "HTTP request could not be completed",
		Details:    err.Error(),
		Diagnostic: fmt.Sprintf("Request failed: %s", err.Error()),
		Retryable:  false,
		Timestamp:  time.Now().UTC(),
	}
}

// NewProtocolError reports a non-2xx HTTP status together with the response body.
func NewProtocolError(statusCode int, body string) *StandardError {
	return &StandardError{
		Code:       ErrCodeProtocolError,
		Message:    "Endpoint returned a non-2xx status",
		Details:    fmt.Sprintf("status: %d, body: %s", statusCode, body),
		Diagnostic: fmt.Sprintf("HTTP error: %d %s", statusCode, body),
		Retryable:  false,
		Timestamp:  time.Now().UTC(),
	}
}

// NewResponseFormatError reports an unparseable response body, keeping the raw
// bytes for diagnosis.
func NewResponseFormatError(rawBody string) *StandardError {
	return &StandardError{
		Code:       ErrCodeResponseFormatInvalid,
		Message:    "Response body is not valid JSON",
		Details:    rawBody,
		Diagnostic: fmt.Sprintf("Invalid JSON response: %s", rawBody),
		Retryable:  false,
		Timestamp:  time.Now().UTC(),
	}
}

// NewResponseShapeError reports a parsed response that lacks the expected
// success/receipt fields. The re-encoded parsed structure is included verbatim.
func NewResponseShapeError(parsed string) *StandardError {
	return &StandardError{
		Code:       ErrCodeResponseShapeUnexpected,
		Message:    "Response parsed but has an unexpected shape",
		Details:    parsed,
		Diagnostic: fmt.Sprintf("Unexpected response: %s", parsed),
		Retryable:  false,
		Timestamp:  time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeConfigurationMissing:
		return "CONFIGURATION"
	case ErrCodeTransportFailed:
		return "TRANSPORT"
	case ErrCodeProtocolError:
		return "PROTOCOL"
	case ErrCodeResponseFormatInvalid, ErrCodeResponseShapeUnexpected:
		return "RESPONSE"
	default:
		return "OTHER"
	}
}
