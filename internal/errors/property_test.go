package apperrors

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNew_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("New round-trips name and message with no cause", prop.ForAll(
		func(name, message string) bool {
			err := New(name, message)
			return err.Name() == name &&
				err.Message() == message &&
				err.Error() == message &&
				err.Cause() == nil &&
				err.Causes() == nil
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("NewWithCause returns the given cause unwrapped", prop.ForAll(
		func(name, message, causeName, causeMessage string) bool {
			cause := New(causeName, causeMessage)
			err := NewWithCause(name, message, cause)
			return err.Cause() == error(cause) && err.Error() == message
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestNewWithCauses_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("aggregate cause renders causes joined by newline", prop.ForAll(
		func(messages []string) bool {
			causes := make([]*NamedError, len(messages))
			for i, m := range messages {
				causes[i] = New("Cause", m)
			}
			err := NewWithCauses("Batch", "batch failed", causes...)

			if len(messages) == 0 {
				return err.Cause() == nil && err.CauseKind() == CauseNone
			}
			agg, ok := err.Cause().(*AggregateError)
			if !ok || agg.Len() != len(messages) {
				return false
			}
			return agg.Error() == strings.Join(messages, "\n") && err.Error() == "batch failed"
		},
		gen.SliceOf(gen.AnyString()),
	))

	properties.Property("Causes round-trips the input sequence", prop.ForAll(
		func(names []string) bool {
			causes := make([]*NamedError, len(names))
			for i, n := range names {
				causes[i] = New(n, "failed")
			}
			got := NewWithCauses("Batch", "batch failed", causes...).Causes()
			if len(names) == 0 {
				return got == nil
			}
			if len(got) != len(causes) {
				return false
			}
			for i := range got {
				if got[i] != causes[i] || got[i].Name() != names[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

func TestAggregateError_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Error joins children in order and declares no cause", prop.ForAll(
		func(messages []string) bool {
			errs := make([]error, len(messages))
			for i, m := range messages {
				errs[i] = New("E", m)
			}
			agg := NewAggregate(errs...)
			return agg.Error() == strings.Join(messages, "\n") && agg.Cause() == nil
		},
		gen.SliceOf(gen.AnyString()),
	))

	properties.TestingRun(t)
}
