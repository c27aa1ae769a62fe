// Package osenv provides ports.Environment implementations.
package osenv

import (
	"os"
	"strings"

	"go.trai.ch/cargowrap/internal/core/ports"
)

// Process reads the environment of the current process.
type Process struct{}

// New returns an Environment backed by the process environment.
func New() ports.Environment {
	return Process{}
}

// Lookup implements ports.Environment.
func (Process) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map is an in-memory environment, keyed by variable name.
type Map map[string]string

// FromEnviron builds a Map from "KEY=VALUE" entries. Entries without "=" are skipped.
func FromEnviron(entries []string) Map {
	m := make(Map, len(entries))
	for _, entry := range entries {
		if k, v, ok := strings.Cut(entry, "="); ok {
			m[k] = v
		}
	}
	return m
}

// Lookup implements ports.Environment.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
