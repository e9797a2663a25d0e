package oaikit

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrInvalidFile is returned when an upload input cannot be sent as a file.
var ErrInvalidFile = errors.New("invalid file")

// ConfigurationError reports an invalid client or process configuration.
// It is returned synchronously and the rejected configuration is never used.
type ConfigurationError struct {
	Msg string
}

// Error returns the error message.
func (e *ConfigurationError) Error() string {
	return e.Msg
}

// NewConfigurationError creates a ConfigurationError with a formatted message.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// IsConfigurationError reports whether err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// ErrorCategory classifies errors by how they should be handled.
type ErrorCategory string

const (
	// ErrorTransient indicates the error is temporary and the operation can be retried.
	// Examples: rate limits, temporary network issues, server overload.
	ErrorTransient ErrorCategory = "transient"

	// ErrorPermanent indicates the error is not recoverable through retry.
	// Examples: invalid API key, insufficient permissions.
	ErrorPermanent ErrorCategory = "permanent"

	// ErrorUserInput indicates the request was invalid and must be corrected.
	// Examples: malformed request, unknown model, missing resource.
	ErrorUserInput ErrorCategory = "user_input"
)

// CategorizedError is an error that provides information about how it should be handled.
type CategorizedError interface {
	error
	Category() ErrorCategory
	Retryable() bool           // convenience: returns true if Category == ErrorTransient
	StatusCode() int           // HTTP status code if applicable, 0 otherwise
	RetryAfter() time.Duration // suggested retry delay from server, 0 if not available
}

// APIError is returned when the remote service answers with a non-success status.
type APIError struct {
	// Code is the HTTP status code.
	Code int

	// Body is the response payload when it parsed as a JSON object, nil otherwise.
	Body map[string]any

	// Raw is the unparsed response payload.
	Raw []byte

	// Header holds the response headers.
	Header http.Header

	// Method and Path identify the failed request.
	Method string
	Path   string
}

// NewAPIError builds an APIError from a response status, headers and body.
// Body is populated only when raw decodes to a JSON object.
func NewAPIError(method, path string, code int, header http.Header, raw []byte) *APIError {
	e := &APIError{
		Code:   code,
		Raw:    raw,
		Header: header,
		Method: method,
		Path:   path,
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err == nil && body != nil {
		e.Body = body
	}
	return e
}

// Error returns the error message, preferring the service's own error message.
func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, msg)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Code)
}

// Message extracts error.message from a structured body, or "".
func (e *APIError) Message() string {
	if e.Body == nil {
		return ""
	}
	switch v := e.Body["error"].(type) {
	case map[string]any:
		if msg, ok := v["message"].(string); ok {
			return msg
		}
	case string:
		return v
	}
	return ""
}

// Structured reports whether the response payload parsed as a JSON object.
func (e *APIError) Structured() bool {
	return e.Body != nil
}

// Category returns the error category derived from the status code.
func (e *APIError) Category() ErrorCategory {
	return CategorizeStatusCode(e.Code)
}

// Retryable returns true if the error is transient and can be retried.
func (e *APIError) Retryable() bool {
	return e.Category() == ErrorTransient
}

// StatusCode returns the HTTP status code.
func (e *APIError) StatusCode() int {
	return e.Code
}

// RetryAfter returns the delay suggested by the Retry-After header, or 0.
func (e *APIError) RetryAfter() time.Duration {
	return ParseRetryAfter(e.Header)
}

// CategorizeStatusCode determines the error category from an HTTP status code.
func CategorizeStatusCode(code int) ErrorCategory {
	switch {
	case code == http.StatusTooManyRequests:
		return ErrorTransient
	case code >= 500 && code < 600:
		return ErrorTransient
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrorPermanent
	case code == http.StatusBadRequest || code == http.StatusNotFound || code == http.StatusUnprocessableEntity:
		return ErrorUserInput
	default:
		return ErrorPermanent
	}
}

// ParseRetryAfter extracts the Retry-After duration from response headers.
// Returns 0 if the header is not present or cannot be parsed.
func ParseRetryAfter(header http.Header) time.Duration {
	if header == nil {
		return 0
	}
	value := header.Get("Retry-After")
	if value == "" {
		return 0
	}

	// Try parsing as seconds (most common)
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	// Try parsing as HTTP-date (RFC 7231)
	if t, err := http.ParseTime(value); err == nil {
		if delay := time.Until(t); delay > 0 {
			return delay
		}
	}
	return 0
}

// IsTransient returns true if the error is categorized as transient.
// It checks if the error or any wrapped error implements CategorizedError.
func IsTransient(err error) bool {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category() == ErrorTransient
	}
	return false
}

// IsPermanent returns true if the error is categorized as permanent.
func IsPermanent(err error) bool {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category() == ErrorPermanent
	}
	return false
}

// IsUserInput returns true if the error is categorized as user input error.
func IsUserInput(err error) bool {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category() == ErrorUserInput
	}
	return false
}

// StatusCodeOf returns the HTTP status code from a categorized error, or 0.
func StatusCodeOf(err error) int {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.StatusCode()
	}
	return 0
}

// RetryAfterOf returns the retry delay from a categorized error, or 0.
func RetryAfterOf(err error) time.Duration {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.RetryAfter()
	}
	return 0
}
