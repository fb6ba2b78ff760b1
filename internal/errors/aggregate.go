package apperrors

import "strings"

// AggregateError presents a sequence of unrelated errors as a single error.
// It declares no cause of its own: Cause returns nil and there is no Unwrap
// method, so generic chain walking stops here. Use Errors to reach the
// children.
type AggregateError struct {
	errs []error
}

// NewAggregate creates an AggregateError over errs, preserving order.
//
// Parameters:
//   - errs: The errors to present together. An empty list is allowed and
//     renders as the empty string. Nil entries, including nil *NamedErrors,
//     are kept and render as <nil>.
//
// Returns:
//   - *AggregateError: The aggregate, owning a copy of errs.
func NewAggregate(errs ...error) *AggregateError {
	owned := make([]error, len(errs))
	for i, err := range errs {
		if !isNil(err) {
			owned[i] = err
		}
	}
	return &AggregateError{errs: owned}
}

// Error joins each child's message with a newline, in order. Nested causes of
// the children are not rendered.
func (a *AggregateError) Error() string {
	var b strings.Builder
	for i, err := range a.errs {
		if i > 0 {
			b.WriteByte('\n')
		}
		if err == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Cause always returns nil.
func (a *AggregateError) Cause() error { return nil }

// Errors returns a copy of the aggregated errors.
func (a *AggregateError) Errors() []error {
	out := make([]error, len(a.errs))
	copy(out, a.errs)
	return out
}

// Len returns the number of aggregated errors.
func (a *AggregateError) Len() int { return len(a.errs) }
