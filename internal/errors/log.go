package apperrors

import "github.com/rs/zerolog"

var (
	_ zerolog.LogObjectMarshaler = (*NamedError)(nil)
	_ zerolog.LogArrayMarshaler  = (*AggregateError)(nil)
)

// MarshalZerologObject logs the error as {name, message, cause_kind} plus its
// cause, nested as an object or an array depending on the kind.
func (e *NamedError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("name", e.name).
		Str("message", e.message).
		Str("cause_kind", e.kind.String())

	switch e.kind {
	case CauseSingle:
		if m, ok := e.cause.(zerolog.LogObjectMarshaler); ok {
			ev.Object("cause", m)
		} else {
			ev.Str("cause", e.cause.Error())
		}
	case CauseAggregate:
		if agg, ok := e.cause.(*AggregateError); ok {
			ev.Array("causes", agg)
		}
	}
}

// MarshalZerologArray logs each child as an object when it knows how to
// marshal itself, and as its message otherwise.
func (a *AggregateError) MarshalZerologArray(arr *zerolog.Array) {
	for _, err := range a.errs {
		switch v := err.(type) {
		case nil:
			arr.Str("<nil>")
		case zerolog.LogObjectMarshaler:
			arr.Object(v)
		default:
			arr.Str(err.Error())
		}
	}
}
