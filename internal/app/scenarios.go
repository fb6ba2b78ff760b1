package app

import (
	"errors"

	apperrors "github.com/agbru/errtree/internal/errors"
)

// Scenario is a titled error tree rendered by the CLI.
type Scenario struct {
	Title string
	Err   error
}

// DefaultScenarios returns the demonstration trees: a bare error, a single
// cause, a batch of causes, and a batch nesting further causes.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Title: "bare",
			Err:   apperrors.New("IO", "read failed"),
		},
		{
			Title: "single cause",
			Err:   apperrors.NewWithCause("Outer", "outer failed", apperrors.New("Inner", "inner failed")),
		},
		{
			Title: "multiple causes",
			Err: apperrors.NewWithCauses("Batch", "batch failed",
				apperrors.New("A", "a failed"),
				apperrors.New("B", "b failed"),
			),
		},
		{
			Title: "nested",
			Err: apperrors.NewWithCauses("Sync", "sync failed",
				apperrors.NewWithCause("Fetch", "fetch failed",
					apperrors.Wrap("Transport", "request failed", errors.New("connection reset")),
				),
				apperrors.NewWithCauses("Store", "store failed",
					apperrors.New("Disk", "disk full"),
					apperrors.New("Index", "index locked"),
				),
			),
		},
	}
}
