// Package composer builds the environment overrides for the child build command.
package composer

import (
	"strings"

	"go.trai.ch/cargowrap/internal/core/domain"
)

// Variables written to the child environment.
const (
	EnvRustFlagsOut = "RUSTFLAGS"

	defaultLinkerLibrariesFlag = "-Cdefault-linker-libraries=yes"
	linkArgsFlag               = "-Clink-args="
)

// LinkerVariable returns the cargo variable selecting the linker for triple,
// e.g. CARGO_TARGET_X86_64_UNKNOWN_LINUX_GNU_LINKER.
func LinkerVariable(triple string) string {
	return "CARGO_TARGET_" + strings.ToUpper(strings.ReplaceAll(triple, "-", "_")) + "_LINKER"
}

// Compose computes the child environment overrides from cfg and scan.
func Compose(cfg Config, scan domain.ScanResult) domain.Composition {
	comp := domain.Composition{
		Overrides: make(map[string]string),
	}

	if len(cfg.Languages) > 0 {
		flags := cfg.RustFlags + " " + defaultLinkerLibrariesFlag

		comp.Choice = Resolve(cfg.Languages)
		if comp.Choice != nil {
			lang := comp.Choice.Language
			if lang.HasCompiler {
				comp.Overrides[LinkerVariable(scan.Target)] = lang.Compiler
			}
			if lang.HasCompilerTarget {
				flags += " " + linkArgsFlag + "--target=" + lang.CompilerTarget
			}
		}

		if cfg.LinkArgs != "" {
			flags += " " + linkArgsFlag + cfg.LinkArgs
		}

		comp.Flags = strings.TrimSpace(flags)
		comp.FlagsSet = true
		comp.Overrides[EnvRustFlagsOut] = flags
	}

	for _, p := range cfg.Passthroughs {
		if value, ok := mergePassthrough(p); ok {
			comp.Overrides[p.Name] = value
		}
	}

	return comp
}

// mergePassthrough prepends the source value to the destination value.
// It reports false when no override should be produced.
func mergePassthrough(p Passthrough) (string, bool) {
	switch {
	case p.HasSource && p.HasDest:
		return p.Source + " " + p.Dest, true
	case p.HasSource:
		return p.Source, true
	default:
		return "", false
	}
}
