package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the provider rejects the API key
	ErrUnauthorized = errors.New("credential rejected")

	// ErrLocationNotFound is returned when the provider has no data for the queried location
	ErrLocationNotFound = errors.New("no data for this location")
)

// ConfigError reports that the API credential is unavailable.
type ConfigError struct {
	Key string
	Err error
}

// Error names the missing or unreadable key.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("config %q: missing", e.Key)
}

// Unwrap returns the read failure, if any.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransportError reports a network failure or an unexpected HTTP status.
// StatusCode is zero when the request never got a response.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error describes the status or the network failure.
func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("request failed: %v", e.Err)
	default:
		return "request failed"
	}
}

// Unwrap returns the network failure, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that could not be parsed or lacks a required field.
type DecodeError struct {
	Field string
	Err   error
}

// Error names the missing field or the parse failure.
func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode response: missing field %q", e.Field)
	}
	return fmt.Sprintf("decode response: %v", e.Err)
}

// Unwrap returns the parse failure, if any.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
