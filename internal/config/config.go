// Package config parses errtree's command-line flags and environment
// overrides into an AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"

	apperrors "github.com/agbru/errtree/internal/errors"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// EnvPrefix is prepended to every environment variable errtree reads.
const EnvPrefix = "ERRTREE_"

// ReportConfig controls how an error tree is rendered.
type ReportConfig struct {
	// Indent is repeated once per depth level.
	Indent string
	// MaxDepth limits the number of rendered levels. 0 means unlimited.
	MaxDepth int
	// Color styles error names for terminal output.
	Color bool
}

// DefaultReportConfig returns the rendering defaults.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{Indent: "  "}
}

// AppConfig is the full configuration of the errtree CLI.
type AppConfig struct {
	Report   ReportConfig
	LogLevel string
	JSONLogs bool
}

// Level returns the parsed zerolog level. Validate guarantees it parses.
func (c AppConfig) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Validate checks the configuration for values that cannot be used.
func (c AppConfig) Validate() error {
	if c.Report.MaxDepth < 0 {
		return apperrors.NewConfigError("max depth must be >= 0, got %d", c.Report.MaxDepth)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return apperrors.Wrap(apperrors.NameConfig, fmt.Sprintf("invalid log level %q", c.LogLevel), errors.WithStack(err))
	}
	return nil
}

// ParseConfig parses args with a fresh FlagSet, applies environment
// overrides for every flag not set explicitly, and validates the result.
// Usage and parse errors are written to errWriter.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{Report: DefaultReportConfig()}
	fs.StringVar(&cfg.Report.Indent, "indent", cfg.Report.Indent, "Indentation repeated per depth level.")
	fs.IntVar(&cfg.Report.MaxDepth, "max-depth", 0, "Maximum number of rendered levels (0 = unlimited).")
	fs.BoolVar(&cfg.Report.Color, "color", false, "Style error names for terminal output.")
	fs.StringVar(&cfg.LogLevel, "log-level", zerolog.LevelInfoValue, "Log level (trace, debug, info, warn, error).")
	fs.BoolVar(&cfg.JSONLogs, "json", false, "Emit JSON logs instead of console logs.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errWriter, "Configuration error: %v\n", err)
		return AppConfig{}, err
	}
	return cfg, nil
}
