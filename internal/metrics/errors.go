package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	apperrors "github.com/agbru/errtree/internal/errors"
)

// UnnamedLabel is the name label used for errors that are not NamedErrors.
const UnnamedLabel = "unnamed"

// ErrorCounter counts the errors found in observed error trees, by name.
type ErrorCounter struct {
	total *prometheus.CounterVec
}

// NewErrorCounter creates the errtree_errors_total counter and registers it
// with reg.
//
// Parameters:
//   - reg: The registerer the counter vector is added to.
//
// Returns:
//   - *ErrorCounter: The registered counter.
//   - error: The registration error, e.g. when the counter already exists in reg.
func NewErrorCounter(reg prometheus.Registerer) (*ErrorCounter, error) {
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "errtree",
		Name:      "errors_total",
		Help:      "Errors observed in error trees, by name.",
	}, []string{"name"})
	if err := reg.Register(total); err != nil {
		return nil, err
	}
	return &ErrorCounter{total: total}, nil
}

// Observe increments the counter once for every error in err's tree.
// AggregateErrors are structural and are not counted themselves; their
// children are. Errors that are not NamedErrors count under UnnamedLabel.
//
// Parameters:
//   - err: The root of the tree. A nil err is ignored.
func (c *ErrorCounter) Observe(err error) {
	apperrors.Walk(err, func(e error, _ int) bool {
		switch v := e.(type) {
		case *apperrors.NamedError:
			c.total.WithLabelValues(v.Name()).Inc()
		case *apperrors.AggregateError:
		default:
			c.total.WithLabelValues(UnnamedLabel).Inc()
		}
		return true
	})
}

// Count returns the current count for name, or 0 when no error with that
// name has been observed. It never creates a series.
func (c *ErrorCounter) Count(name string) float64 {
	ch := make(chan prometheus.Metric)
	go func() {
		c.total.Collect(ch)
		close(ch)
	}()

	var total float64
	for metric := range ch {
		m := &dto.Metric{}
		if err := metric.Write(m); err != nil {
			continue
		}
		for _, label := range m.GetLabel() {
			if label.GetName() == "name" && label.GetValue() == name {
				total += m.GetCounter().GetValue()
			}
		}
	}
	return total
}
