package apperrors

// NamedError is a categorised error with a human-readable message and an
// optional cause. It is immutable after construction.
type NamedError struct {
	name    string
	message string
	kind    CauseKind
	// cause is the single cause for CauseSingle or the *AggregateError over
	// causes for CauseAggregate. It is nil for CauseNone.
	cause  error
	causes []*NamedError
}

// New creates a NamedError with no cause.
//
// Parameters:
//   - name: A short category identifier. It need not be unique.
//   - message: The human-readable description returned by Error.
//
// Returns:
//   - *NamedError: An error whose Cause is nil.
func New(name, message string) *NamedError {
	return &NamedError{name: name, message: message}
}

// NewWithCause creates a NamedError whose cause is exactly cause, not
// wrapped in an aggregate.
//
// Parameters:
//   - name: A short category identifier.
//   - message: The human-readable description returned by Error.
//   - cause: The single cause. A nil cause produces an error without a cause.
//
// Returns:
//   - *NamedError: An error whose Cause returns cause.
func NewWithCause(name, message string, cause *NamedError) *NamedError {
	return Wrap(name, message, cause)
}

// Wrap creates a NamedError whose single cause is an arbitrary error.
// A nil cause, including a nil *NamedError, produces an error without a cause.
func Wrap(name, message string, cause error) *NamedError {
	if isNil(cause) {
		return New(name, message)
	}
	return &NamedError{name: name, message: message, kind: CauseSingle, cause: cause}
}

// NewWithCauses creates a NamedError explained jointly by causes. The cause
// reported by Cause and Unwrap is an *AggregateError over the same sequence,
// even when only one cause is given.
//
// Parameters:
//   - name: A short category identifier.
//   - message: The human-readable description returned by Error.
//   - causes: The causes, in order. With none the result is the same as New.
//
// Returns:
//   - *NamedError: An error whose Causes returns a copy of causes.
func NewWithCauses(name, message string, causes ...*NamedError) *NamedError {
	if len(causes) == 0 {
		return New(name, message)
	}

	owned := make([]*NamedError, len(causes))
	copy(owned, causes)

	errs := make([]error, len(owned))
	for i, c := range owned {
		// keep a nil entry untyped so the aggregate renders it as <nil>
		if c != nil {
			errs[i] = c
		}
	}

	return &NamedError{
		name:    name,
		message: message,
		kind:    CauseAggregate,
		cause:   &AggregateError{errs: errs},
		causes:  owned,
	}
}

// Error returns the message only. Causes are never included.
func (e *NamedError) Error() string { return e.message }

// Name returns the error's category name.
func (e *NamedError) Name() string { return e.name }

// Message returns the human-readable message.
func (e *NamedError) Message() string { return e.message }

// CauseKind reports how the cause was supplied.
func (e *NamedError) CauseKind() CauseKind { return e.kind }

// Causes returns a copy of the causes passed to NewWithCauses, or nil.
func (e *NamedError) Causes() []*NamedError {
	if e.causes == nil {
		return nil
	}
	out := make([]*NamedError, len(e.causes))
	copy(out, e.causes)
	return out
}

// Cause returns the primary cause, or nil when there is none.
func (e *NamedError) Cause() error {
	if e.cause == nil {
		return nil
	}
	return e.cause
}

// Unwrap returns the primary cause so errors.Is and errors.As can follow it.
func (e *NamedError) Unwrap() error { return e.Cause() }

// isNil reports whether err is nil or a nil *NamedError stored in an
// error interface.
func isNil(err error) bool {
	if err == nil {
		return true
	}
	named, ok := err.(*NamedError)
	return ok && named == nil
}
