package metrics

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	apperrors "github.com/agbru/errtree/internal/errors"
)

func TestErrorCounter_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter, err := NewErrorCounter(reg)
	if err != nil {
		t.Fatalf("NewErrorCounter: %v", err)
	}

	counter.Observe(apperrors.NewWithCauses("Batch", "batch failed",
		apperrors.New("IO", "read failed"),
		apperrors.Wrap("IO", "write failed", errors.New("disk full")),
	))
	counter.Observe(fmt.Errorf("context: %w", apperrors.New("IO", "read failed")))
	counter.Observe(nil)

	tests := []struct {
		name     string
		expected float64
	}{
		{"Batch", 1},
		{"IO", 3},
		{UnnamedLabel, 2},
	}
	for _, tt := range tests {
		if got := counter.Count(tt.name); got != tt.expected {
			t.Errorf("Count(%q) = %v, expected %v", tt.name, got, tt.expected)
		}
	}

	expected := `
# HELP errtree_errors_total Errors observed in error trees, by name.
# TYPE errtree_errors_total counter
errtree_errors_total{name="Batch"} 1
errtree_errors_total{name="IO"} 3
errtree_errors_total{name="unnamed"} 2
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "errtree_errors_total"); err != nil {
		t.Error(err)
	}
}

func TestErrorCounter_CountDoesNotCreateSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter, err := NewErrorCounter(reg)
	if err != nil {
		t.Fatalf("NewErrorCounter: %v", err)
	}
	counter.Observe(apperrors.New("IO", "read failed"))

	if got := counter.Count("Missing"); got != 0 {
		t.Errorf("Count(%q) = %v, expected 0", "Missing", got)
	}
	if got := testutil.CollectAndCount(counter.total); got != 1 {
		t.Errorf("expected a single series after reading an unknown name, got %d", got)
	}
	if got := testutil.ToFloat64(counter.total.WithLabelValues("IO")); got != 1 {
		t.Errorf("expected IO count 1, got %v", got)
	}
}

func TestNewErrorCounter_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewErrorCounter(reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewErrorCounter(reg); err == nil {
		t.Error("expected an error registering the counter twice")
	}
}
