// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cargowrap/internal/adapters/logger"
	_ "go.trai.ch/cargowrap/internal/adapters/osenv"
	_ "go.trai.ch/cargowrap/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/cargowrap/internal/app"
)
