package domain

import (
	"errors"
	"fmt"
)

// ConfigError reports an invalid generation request. Every configuration
// problem is detected before any sampling occurs, so a ConfigError always
// means no output was produced.
type ConfigError struct {
	msg string
}

// NewConfigError builds a ConfigError with a formatted diagnostic naming
// the constraint that failed.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string { return e.msg }

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
