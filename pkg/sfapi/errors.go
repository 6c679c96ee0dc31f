package sfapi

import (
	"errors"
	"fmt"
	"strings"
)

// Static errors that configuration failures unwrap to.
var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrUnknownCountry     = errors.New("unknown country code")
)

// ConfigurationError signals a setup defect: missing credentials or an
// invalid country code. It is raised synchronously, before any network
// access, and is never retried.
type ConfigurationError struct {
	err error
	// Fields names the credential fields that failed to resolve.
	Fields []string
	// Code is the rejected country code, when applicable.
	Code string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	switch {
	case len(e.Fields) > 0:
		return fmt.Sprintf("%s: %s must be set", e.err, strings.Join(e.Fields, " and "))
	case e.Code != "":
		return fmt.Sprintf("%s: %q", e.err, e.Code)
	default:
		return e.err.Error()
	}
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *ConfigurationError) Unwrap() error {
	return e.err
}

// NewMissingCredentialsError builds a ConfigurationError naming the
// credential fields that failed to resolve.
func NewMissingCredentialsError(fields ...string) *ConfigurationError {
	return &ConfigurationError{err: ErrMissingCredentials, Fields: fields}
}

func newUnknownCountryError(code string) *ConfigurationError {
	return &ConfigurationError{err: ErrUnknownCountry, Code: code}
}
