// Package apperrors defines the error composition types used across errtree:
// NamedError, a categorised error carrying an optional cause, and
// AggregateError, which presents several unrelated errors as one value.
//
// Error Wrapping Guidelines:
// NamedError implements both Unwrap() (for errors.Is and errors.As) and
// Cause() (the github.com/pkg/errors convention). AggregateError deliberately
// implements neither chain accessor; its children are reached through Errors().
// Error() is shallow for both types: callers walk the chain with Cause, Chain
// or Walk to see nested messages.
package apperrors
