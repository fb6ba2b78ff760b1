package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the errtree CLI.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the run was canceled (e.g., SIGINT).
)

// NameConfig is the name carried by configuration errors.
const NameConfig = "ConfigError"

// GenericError is the capability shared by every error that takes part in a
// cause chain: a rendered message and an optional upstream cause.
type GenericError interface {
	error
	Cause() error
}

var (
	_ GenericError = (*NamedError)(nil)
	_ GenericError = (*AggregateError)(nil)
)

// NewConfigError creates a NamedError describing a user configuration
// problem, such as an invalid flag or environment value.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - *NamedError: A configuration error with no cause.
func NewConfigError(format string, a ...any) *NamedError {
	return New(NameConfig, fmt.Sprintf(format, a...))
}

// IsConfigError reports whether any error in err's chain is a NamedError
// named NameConfig.
func IsConfigError(err error) bool {
	return HasName(err, NameConfig)
}

// HasName reports whether err, or any error reachable through errors.As,
// is a NamedError with the given name.
func HasName(err error, name string) bool {
	for err != nil {
		var named *NamedError
		if !errors.As(err, &named) {
			return false
		}
		if named.Name() == name {
			return true
		}
		err = named.Unwrap()
	}
	return false
}
