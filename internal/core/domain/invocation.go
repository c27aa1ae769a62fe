// Package domain holds the value types shared by the scanner, the composer and the executor.
package domain

// BuildSubcommand is inserted in front of the forwarded arguments.
const BuildSubcommand = "build"

// Invocation is the request received from the orchestrator.
type Invocation struct {
	// Executable names the downstream build tool.
	Executable string
	// Args are forwarded verbatim after BuildSubcommand.
	Args []string
}

// ChildArgs returns the argument list passed to the build tool.
func (i Invocation) ChildArgs() []string {
	args := make([]string, 0, len(i.Args)+1)
	args = append(args, BuildSubcommand)
	return append(args, i.Args...)
}

// ScanResult holds the facts the scanner extracts from the forwarded arguments.
type ScanResult struct {
	Verbose bool
	Target  string
}

// HasTarget reports whether a target triple was found.
func (r ScanResult) HasTarget() bool {
	return r.Target != ""
}
