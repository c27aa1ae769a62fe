// Package main is the entry point for cargowrap.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargowrap/cmd/cargowrap/commands"
	"go.trai.ch/cargowrap/internal/app"
	"go.trai.ch/cargowrap/internal/core/domain"
	_ "go.trai.ch/cargowrap/internal/wiring"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitConfigError = 2
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, defaultProvider))
}

func defaultProvider(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailure
	}
	defer cleanup()

	if out, ok := components.Logger.(interface{ SetOutput(io.Writer) }); ok {
		out.SetOutput(stderr)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	err = cli.Execute(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrBuildExecutionFailed):
		// The build tool has already reported its own failure.
		return exitFailure
	case errors.Is(err, domain.ErrInvalidPreference):
		components.Logger.Error(err)
		return exitConfigError
	default:
		components.Logger.Error(err)
		return exitFailure
	}
}
