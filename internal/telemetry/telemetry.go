// Package telemetry converts error trees into OpenTelemetry span data.
package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/errtree/internal/errors"
)

// Attribute keys set by Attributes.
const (
	KeyName      = attribute.Key("error.name")
	KeyMessage   = attribute.Key("error.message")
	KeyCauseKind = attribute.Key("error.cause_kind")
	KeyChain     = attribute.Key("error.chain")
	KeyCount     = attribute.Key("error.count")
)

// Attributes describes err as span attributes: its message and the messages
// along its cause chain, plus name and cause kind for a NamedError or the
// child count for an AggregateError. Returns nil for a nil err.
func Attributes(err error) []attribute.KeyValue {
	if err == nil {
		return nil
	}

	chain := apperrors.Chain(err)
	messages := make([]string, len(chain))
	for i, e := range chain {
		messages[i] = e.Error()
	}

	attrs := []attribute.KeyValue{
		KeyMessage.String(err.Error()),
		KeyChain.StringSlice(messages),
	}
	switch e := err.(type) {
	case *apperrors.NamedError:
		attrs = append(attrs, KeyName.String(e.Name()), KeyCauseKind.String(e.CauseKind().String()))
	case *apperrors.AggregateError:
		attrs = append(attrs, KeyCount.Int(e.Len()))
	}
	return attrs
}

// RecordError adds err to span as an exception event carrying Attributes(err)
// and marks the span as failed. It does nothing for a nil span or err.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err, trace.WithAttributes(Attributes(err)...))
	span.SetStatus(codes.Error, err.Error())
}
