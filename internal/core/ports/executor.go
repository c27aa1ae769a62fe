// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cargowrap/internal/core/domain"
)

// Executor defines the interface for running the build command.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd to completion with its overrides applied on top of the
	// ambient environment.
	//
	// It returns an error if the command cannot be started or exits with a
	// non-success status.
	Execute(ctx context.Context, cmd *domain.Command) error
}
