// Package app implements the application layer for cargowrap.
package app

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cargowrap/internal/core/domain"
	"go.trai.ch/cargowrap/internal/core/ports"
	"go.trai.ch/cargowrap/internal/engine/composer"
	"go.trai.ch/cargowrap/internal/engine/scanner"
	"go.trai.ch/zerr"
)

// TracerName is the instrumentation name used for spans.
const TracerName = "go.trai.ch/cargowrap/internal/app"

// App mediates one build invocation.
type App struct {
	env            ports.Environment
	executor       ports.Executor
	logger         ports.Logger
	tracerProvider trace.TracerProvider
}

// New creates a new App instance.
func New(env ports.Environment, executor ports.Executor, log ports.Logger) *App {
	return &App{
		env:      env,
		executor: executor,
		logger:   log,
	}
}

// WithTracerProvider sets the provider spans are recorded on.
// By default the global OpenTelemetry provider is used.
func (a *App) WithTracerProvider(tp trace.TracerProvider) *App {
	a.tracerProvider = tp
	return a
}

func (a *App) tracer() trace.Tracer {
	if a.tracerProvider != nil {
		return a.tracerProvider.Tracer(TracerName)
	}
	return otel.Tracer(TracerName)
}

// Run mediates the invocation described by args. args[0] names the build
// tool; the remaining arguments are forwarded after the build subcommand.
//
// No environment is read and nothing is spawned when the executable or the
// target triple is missing.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return domain.ErrMissingExecutable
	}

	inv := domain.Invocation{Executable: args[0], Args: args[1:]}
	tracer := a.tracer()

	ctx, span := tracer.Start(ctx, "invocation", trace.WithAttributes(
		attribute.String("executable", inv.Executable),
	))
	defer span.End()

	cmd, scan, err := a.prepare(ctx, tracer, inv)
	if err != nil {
		recordError(span, err)
		return err
	}

	if scan.Verbose {
		a.logger.Info("cargowrap: " + cmd.String())
	}

	if err := a.execute(ctx, tracer, cmd); err != nil {
		recordError(span, err)
		return err
	}

	return nil
}

// prepare scans the arguments and composes the child command.
func (a *App) prepare(ctx context.Context, tracer trace.Tracer, inv domain.Invocation) (*domain.Command, domain.ScanResult, error) {
	_, scanSpan := tracer.Start(ctx, "scan")
	scan := scanner.Scan(inv.Args)
	scanSpan.SetAttributes(
		attribute.Bool("verbose", scan.Verbose),
		attribute.String("target", scan.Target),
	)
	scanSpan.End()

	if !scan.HasTarget() {
		return nil, scan, domain.ErrMissingTarget
	}

	_, composeSpan := tracer.Start(ctx, "compose")
	defer composeSpan.End()

	cfg, err := composer.LoadConfig(a.env)
	if err != nil {
		recordError(composeSpan, err)
		return nil, scan, err
	}

	comp := composer.Compose(cfg, scan)

	composeSpan.SetAttributes(attribute.Int("overrides", len(comp.Overrides)))
	if comp.Choice != nil {
		composeSpan.SetAttributes(attribute.String("linker_language", comp.Choice.Language.Name))
	}

	if scan.Verbose && comp.FlagsSet {
		a.logger.Info("Rustflags are: `" + comp.Flags + "`")
	}

	return &domain.Command{
		Path:      inv.Executable,
		Args:      inv.ChildArgs(),
		Overrides: comp.Overrides,
	}, scan, nil
}

func (a *App) execute(ctx context.Context, tracer trace.Tracer, cmd *domain.Command) error {
	ctx, span := tracer.Start(ctx, "execute")
	defer span.End()

	if err := a.executor.Execute(ctx, cmd); err != nil {
		recordError(span, err)
		if errors.Is(err, domain.ErrBuildExecutionFailed) || errors.Is(err, domain.ErrSpawnFailed) {
			return err
		}
		// Executors that do not classify are treated as spawn failures.
		return errors.Join(domain.ErrSpawnFailed, zerr.Wrap(err, "executor failed"))
	}

	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
