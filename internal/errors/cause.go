package apperrors

// CauseKind tags how a NamedError's cause was supplied.
type CauseKind int

const (
	// CauseNone means the error has no cause.
	CauseNone CauseKind = iota
	// CauseSingle means exactly one cause was given and is returned unwrapped.
	CauseSingle
	// CauseAggregate means a list of causes was given and is exposed as an
	// *AggregateError over that list.
	CauseAggregate
)

// String returns the lower-case name of the kind.
func (k CauseKind) String() string {
	switch k {
	case CauseNone:
		return "none"
	case CauseSingle:
		return "single"
	case CauseAggregate:
		return "aggregate"
	default:
		return "unknown"
	}
}
