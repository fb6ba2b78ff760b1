// Package logging provides a unified logging interface for errtree.
// It abstracts the underlying logging implementation, allowing consistent logging
// across components while supporting multiple backends. Errors that know how to
// marshal themselves for zerolog (such as apperrors.NamedError) are logged as
// structured objects rather than flat strings.
package logging
