package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingExecutable is returned when no build tool executable is passed as the first argument.
	ErrMissingExecutable = zerr.New("expected cargo executable")

	// ErrMissingTarget is returned when the forwarded arguments carry no --target triple.
	ErrMissingTarget = zerr.New("expected target triple")

	// ErrInvalidPreference is returned when a linker preference variable is set but is not an integer.
	// It means the orchestrator produced malformed input and is never recovered.
	ErrInvalidPreference = zerr.New("internal error: linker preference has wrong format")

	// ErrBuildExecutionFailed is returned when the build command exits with a non-success status.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrSpawnFailed is returned when the build command cannot be started.
	ErrSpawnFailed = zerr.New("failed to start build command")
)
