package domain

// LinkerLanguage is a candidate toolchain that may drive final linking.
// Each fact is optional; the Has* flags separate "unset" from "set but empty".
type LinkerLanguage struct {
	Name              string
	Preference        *int
	Compiler          string
	HasCompiler       bool
	CompilerTarget    string
	HasCompilerTarget bool
}

// HasPreference reports whether the language carries a numeric preference.
func (l LinkerLanguage) HasPreference() bool {
	return l.Preference != nil
}

// LinkerChoice is the language selected to drive linking for one invocation.
type LinkerChoice struct {
	Language LinkerLanguage
}

// Composition is the result of composing the child environment.
type Composition struct {
	// Overrides replace the ambient value of each key in the child environment.
	// Keys not present here are passed through untouched.
	Overrides map[string]string
	// Flags is the trimmed flags string, kept for diagnostics.
	Flags string
	// FlagsSet reports whether a flags override was registered.
	FlagsSet bool
	// Choice is nil when no linker language was resolved.
	Choice *LinkerChoice
}
