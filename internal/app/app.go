package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/errtree/internal/config"
	apperrors "github.com/agbru/errtree/internal/errors"
	"github.com/agbru/errtree/internal/logging"
	"github.com/agbru/errtree/internal/metrics"
	"github.com/agbru/errtree/internal/report"
	"github.com/agbru/errtree/internal/telemetry"
)

const scenarioKey = attribute.Key("errtree.scenario")

// Application represents the errtree application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	Scenarios []Scenario
	ErrWriter io.Writer
	// Registry receives the errtree_errors_total counter.
	Registry *prometheus.Registry
	// Tracer starts one span per rendered scenario.
	Tracer trace.Tracer

	counter *metrics.ErrorCounter
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets the logger used to report each scenario.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithScenarios replaces the built-in scenarios.
func WithScenarios(s ...Scenario) AppOption {
	return func(a *Application) { a.Scenarios = s }
}

// WithRegistry sets the registry the error counter is registered with.
func WithRegistry(reg *prometheus.Registry) AppOption {
	return func(a *Application) { a.Registry = reg }
}

// WithTracer sets the tracer used for scenario spans. The default is the
// global otel tracer, which does nothing unless a provider is installed.
func WithTracer(t trace.Tracer) AppOption {
	return func(a *Application) { a.Tracer = t }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "errtree"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{Config: cfg, ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		if cfg.JSONLogs {
			app.Logger = logging.NewLogger(errWriter, programName, cfg.Level())
		} else {
			app.Logger = logging.NewConsoleLogger(errWriter, programName, cfg.Level())
		}
	}
	if app.Scenarios == nil {
		app.Scenarios = DefaultScenarios()
	}
	if app.Registry == nil {
		app.Registry = prometheus.NewRegistry()
	}
	if app.Tracer == nil {
		app.Tracer = otel.Tracer("errtree")
	}

	counter, err := metrics.NewErrorCounter(app.Registry)
	if err != nil {
		return nil, err
	}
	app.counter = counter
	return app, nil
}

// Run renders every scenario to out, records it on a span, logs it, and
// returns an exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	for _, sc := range a.Scenarios {
		if ctx.Err() != nil {
			a.Logger.Error("run canceled", ctx.Err())
			return apperrors.ExitErrorCanceled
		}
		_, span := a.Tracer.Start(ctx, "errtree.scenario", trace.WithAttributes(scenarioKey.String(sc.Title)))
		fmt.Fprintf(out, "== %s\n%s\n\n", sc.Title, report.Render(sc.Err, a.Config.Report))
		telemetry.RecordError(span, sc.Err)
		span.End()

		a.Logger.Error("scenario", sc.Err, logging.String("scenario", sc.Title))
		a.counter.Observe(sc.Err)
	}

	a.Logger.Info("scenarios rendered",
		logging.Int("scenarios", len(a.Scenarios)),
		logging.Float64("unnamed", a.counter.Count(metrics.UnnamedLabel)),
	)
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCode maps a construction error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil, IsHelpError(err):
		return apperrors.ExitSuccess
	case apperrors.IsConfigError(err):
		return apperrors.ExitErrorConfig
	default:
		return apperrors.ExitErrorGeneric
	}
}
