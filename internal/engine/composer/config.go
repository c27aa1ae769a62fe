package composer

import (
	"errors"
	"strconv"
	"strings"

	"go.trai.ch/cargowrap/internal/core/domain"
	"go.trai.ch/cargowrap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment variables read by the composer.
const (
	EnvRustFlags       = "CORROSION_RUSTFLAGS"
	EnvLinkerLanguages = "CORROSION_LINKER_LANGUAGES"
	EnvLinkArgs        = "CORROSION_LINK_ARGS"

	envPrefix = "CORROSION_"
)

// Passthrough names a flags variable that is merged from its CORROSION_ prefixed source.
type Passthrough struct {
	Name string

	Source    string
	HasSource bool

	Dest    string
	HasDest bool
}

// Config is a snapshot of every environment input the composer needs.
// It is taken once per invocation so that Compose stays a pure function.
type Config struct {
	RustFlags    string
	Languages    []domain.LinkerLanguage
	LinkArgs     string
	Passthroughs []Passthrough
}

// PassthroughNames lists the compiler flag variables merged into the child environment, in order.
var PassthroughNames = []string{"CFLAGS", "CXXFLAGS"}

// PreferenceVariable returns the name of the preference variable for a language.
func PreferenceVariable(language string) string {
	return envPrefix + language + "_LINKER_PREFERENCE"
}

// CompilerVariable returns the name of the compiler variable for a language.
func CompilerVariable(language string) string {
	return envPrefix + language + "_COMPILER"
}

// CompilerTargetVariable returns the name of the compiler target variable for a language.
func CompilerTargetVariable(language string) string {
	return envPrefix + language + "_COMPILER_TARGET"
}

// LoadConfig reads the composer inputs from env.
//
// A preference variable that is set but does not parse as a 32-bit decimal
// integer is reported as domain.ErrInvalidPreference.
func LoadConfig(env ports.Environment) (Config, error) {
	rustFlags, _ := env.Lookup(EnvRustFlags)
	linkArgs, _ := env.Lookup(EnvLinkArgs)

	cfg := Config{
		RustFlags: rustFlags,
		LinkArgs:  linkArgs,
	}

	rawLanguages, _ := env.Lookup(EnvLinkerLanguages)
	for _, name := range ParseLanguages(rawLanguages) {
		lang, err := loadLanguage(env, name)
		if err != nil {
			return Config{}, err
		}
		cfg.Languages = append(cfg.Languages, lang)
	}

	for _, name := range PassthroughNames {
		p := Passthrough{Name: name}
		p.Source, p.HasSource = env.Lookup(envPrefix + name)
		p.Dest, p.HasDest = env.Lookup(name)
		cfg.Passthroughs = append(cfg.Passthroughs, p)
	}

	return cfg, nil
}

// ParseLanguages splits a single-space separated language list, dropping empty tokens.
func ParseLanguages(raw string) []string {
	var langs []string
	for _, tok := range strings.Split(strings.TrimSpace(raw), " ") {
		if tok != "" {
			langs = append(langs, tok)
		}
	}
	return langs
}

func loadLanguage(env ports.Environment, name string) (domain.LinkerLanguage, error) {
	lang := domain.LinkerLanguage{Name: name}

	if raw, ok := env.Lookup(PreferenceVariable(name)); ok {
		pref, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			detail := zerr.With(zerr.Wrap(err, "invalid linker preference"), "variable", PreferenceVariable(name))
			detail = zerr.With(detail, "value", raw)
			return domain.LinkerLanguage{}, errors.Join(domain.ErrInvalidPreference, detail)
		}
		p := int(pref)
		lang.Preference = &p
	}

	lang.Compiler, lang.HasCompiler = env.Lookup(CompilerVariable(name))
	lang.CompilerTarget, lang.HasCompilerTarget = env.Lookup(CompilerTargetVariable(name))

	return lang, nil
}
