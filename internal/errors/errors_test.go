package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *NamedError
		expected string
	}{
		{
			name:     "plain message",
			err:      NewConfigError("invalid flag value"),
			expected: "invalid flag value",
		},
		{
			name:     "formatted message",
			err:      NewConfigError("invalid value %d for flag %s", -1, "--max-depth"),
			expected: "invalid value -1 for flag --max-depth",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.err.Name() != NameConfig {
				t.Errorf("expected name %q, got %q", NameConfig, tt.err.Name())
			}
			if tt.err.Cause() != nil {
				t.Errorf("expected no cause, got %v", tt.err.Cause())
			}
		})
	}
}

func TestIsConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"config error", NewConfigError("bad"), true},
		{"wrapped with fmt.Errorf", fmt.Errorf("parse: %w", NewConfigError("bad")), true},
		{"cause of another named error", NewWithCause("Startup", "startup failed", NewConfigError("bad")), true},
		{"other name", New("IO", "read failed"), false},
		{"regular error", errors.New("bad"), false},
		{"hidden behind aggregate", NewWithCauses("Batch", "batch failed", NewConfigError("bad")), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsConfigError(tt.err); got != tt.expected {
				t.Errorf("IsConfigError(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestCauseKindString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind     CauseKind
		expected string
	}{
		{CauseNone, "none"},
		{CauseSingle, "single"},
		{CauseAggregate, "aggregate"},
		{CauseKind(42), "unknown"},
	}
	for _, tt := range tests {
		tt := tt
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("CauseKind(%d).String() = %q, expected %q", int(tt.kind), got, tt.expected)
		}
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorCanceled": ExitErrorCanceled,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
