package errorwrapper

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Common error types used across the application
var (
	// ErrInvalidConfiguration indicates a fatal startup configuration problem
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrTimeout indicates an operation timed out
	ErrTimeout = errors.New("operation timed out")
	// ErrNetworkFailure indicates network connectivity issues
	ErrNetworkFailure = errors.New("network failure")
	// ErrScheduleParse indicates a schedule fragment could not be parsed
	ErrScheduleParse = errors.New("schedule parse failure")
	// ErrNotificationFailure indicates a webhook delivery problem
	ErrNotificationFailure = errors.New("notification failure")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ClassifyNetworkError pairs a transport failure with ErrTimeout or
// ErrNetworkFailure so callers can branch with errors.Is. Context
// cancellation is not a failure and passes through unchanged.
func ClassifyNetworkError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrNetworkFailure, err)
}

// ConfigError represents a fatal startup configuration problem with
// field-specific information. Configuration errors halt the process; they
// never occur inside the recurring watch loop.
type ConfigError struct {
	Field   string
	Value   any
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NewConfigError creates a new configuration error
func NewConfigError(field string, value any, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// FetchError represents a transient failure while checking availability.
// Fetch errors are logged and skipped; they never change availability state
// and never terminate the watch loop.
type FetchError struct {
	URL     string
	Reason  string
	Wrapped error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch error for URL '%s': %s", e.URL, e.Reason)
}

func (e *FetchError) Unwrap() error {
	return e.Wrapped
}

// NewFetchError creates a new fetch error
func NewFetchError(url, reason string, wrapped error) *FetchError {
	return &FetchError{
		URL:     url,
		Reason:  reason,
		Wrapped: wrapped,
	}
}

// HTTPError represents an unexpected HTTP response status
type HTTPError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *HTTPError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("HTTP %d error for URL '%s': %s", e.StatusCode, e.URL, e.Message)
	}
	return fmt.Sprintf("HTTP %d error: %s", e.StatusCode, e.Message)
}

// NewHTTPErrorWithURL creates a new HTTP error with URL context
func NewHTTPErrorWithURL(statusCode int, message, url string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		URL:        url,
	}
}

// NotifyError represents a transient webhook delivery failure. Delivery
// failures are logged and swallowed; the webhook URL is deliberately not
// part of the message since it embeds a secret token.
type NotifyError struct {
	StatusCode int
	Reason     string
	Wrapped    error
}

func (e *NotifyError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("notify error: %s (status %d)", e.Reason, e.StatusCode)
	}
	return fmt.Sprintf("notify error: %s", e.Reason)
}

func (e *NotifyError) Unwrap() error {
	if e.Wrapped != nil {
		return e.Wrapped
	}
	return ErrNotificationFailure
}

// NewNotifyError creates a new notification delivery error
func NewNotifyError(statusCode int, reason string, wrapped error) *NotifyError {
	return &NotifyError{
		StatusCode: statusCode,
		Reason:     reason,
		Wrapped:    wrapped,
	}
}
