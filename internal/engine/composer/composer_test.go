package composer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargowrap/internal/adapters/osenv"
	"go.trai.ch/cargowrap/internal/core/domain"
	"go.trai.ch/cargowrap/internal/engine/composer"
)

const linuxTarget = "x86_64-unknown-linux-gnu"

func compose(t *testing.T, env osenv.Map, target string) domain.Composition {
	t.Helper()

	cfg, err := composer.LoadConfig(env)
	require.NoError(t, err)

	return composer.Compose(cfg, domain.ScanResult{Target: target})
}

func TestLinkerVariable(t *testing.T) {
	assert.Equal(t, "CARGO_TARGET_X86_64_UNKNOWN_LINUX_GNU_LINKER", composer.LinkerVariable(linuxTarget))
	assert.Equal(t, "CARGO_TARGET_X86_64_PC_WINDOWS_MSVC_LINKER", composer.LinkerVariable("x86_64-pc-windows-msvc"))
	assert.Equal(t, "CARGO_TARGET_THUMBV7EM_NONE_EABIHF_LINKER", composer.LinkerVariable("thumbv7em-none-eabihf"))
}

func TestCompose_NoLanguages(t *testing.T) {
	tests := []struct {
		name string
		env  osenv.Map
	}{
		{name: "unset", env: osenv.Map{"CORROSION_RUSTFLAGS": "-Cfoo"}},
		{name: "empty", env: osenv.Map{"CORROSION_RUSTFLAGS": "-Cfoo", "CORROSION_LINKER_LANGUAGES": ""}},
		{name: "blank", env: osenv.Map{"CORROSION_LINKER_LANGUAGES": "  "}},
		{
			name: "link args ignored without languages",
			env:  osenv.Map{"CORROSION_LINK_ARGS": "-lfoo", "CORROSION_C_COMPILER": "cc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp := compose(t, tt.env, linuxTarget)

			assert.Empty(t, comp.Overrides)
			assert.False(t, comp.FlagsSet)
			assert.Empty(t, comp.Flags)
			assert.Nil(t, comp.Choice)
		})
	}
}

func TestCompose_DefaultLinkerLibraries(t *testing.T) {
	comp := compose(t, osenv.Map{
		"CORROSION_RUSTFLAGS":        "-Copt-level=3",
		"CORROSION_LINKER_LANGUAGES": "C",
	}, linuxTarget)

	assert.Equal(t, map[string]string{
		"RUSTFLAGS": "-Copt-level=3 -Cdefault-linker-libraries=yes",
	}, comp.Overrides)
	assert.True(t, comp.FlagsSet)
	require.NotNil(t, comp.Choice)
	assert.Equal(t, "C", comp.Choice.Language.Name)
}

func TestCompose_FlagsUntrimmedInEnvironment(t *testing.T) {
	comp := compose(t, osenv.Map{
		"CORROSION_LINKER_LANGUAGES": "C",
	}, linuxTarget)

	assert.Equal(t, " -Cdefault-linker-libraries=yes", comp.Overrides["RUSTFLAGS"])
	assert.Equal(t, "-Cdefault-linker-libraries=yes", comp.Flags)
}

func TestCompose_NumberedSupersedesUnnumbered(t *testing.T) {
	comp := compose(t, osenv.Map{
		"CORROSION_LINKER_LANGUAGES":    "A B",
		"CORROSION_A_COMPILER":          "/usr/bin/a-cc",
		"CORROSION_B_LINKER_PREFERENCE": "5",
		"CORROSION_B_COMPILER":          "/usr/bin/b-cc",
	}, linuxTarget)

	require.NotNil(t, comp.Choice)
	assert.Equal(t, "B", comp.Choice.Language.Name)
	assert.Equal(t, "/usr/bin/b-cc", comp.Overrides["CARGO_TARGET_X86_64_UNKNOWN_LINUX_GNU_LINKER"])
}

func TestCompose_CompilerAndTarget(t *testing.T) {
	comp := compose(t, osenv.Map{
		"CORROSION_RUSTFLAGS":             "-Cfoo",
		"CORROSION_LINKER_LANGUAGES":      "C CXX",
		"CORROSION_C_LINKER_PREFERENCE":   "0",
		"CORROSION_C_COMPILER":            "clang",
		"CORROSION_CXX_LINKER_PREFERENCE": "1",
		"CORROSION_CXX_COMPILER":          "clang++",
		"CORROSION_CXX_COMPILER_TARGET":   "aarch64-linux-android21",
		"CORROSION_LINK_ARGS":             "-Wl,--as-needed",
	}, "aarch64-linux-android")

	assert.Equal(t, map[string]string{
		"CARGO_TARGET_AARCH64_LINUX_ANDROID_LINKER": "clang++",
		"RUSTFLAGS": "-Cfoo -Cdefault-linker-libraries=yes" +
			" -Clink-args=--target=aarch64-linux-android21" +
			" -Clink-args=-Wl,--as-needed",
	}, comp.Overrides)
}

func TestCompose_EmptyCompilerStillOverrides(t *testing.T) {
	comp := compose(t, osenv.Map{
		"CORROSION_LINKER_LANGUAGES": "C",
		"CORROSION_C_COMPILER":       "",
	}, linuxTarget)

	v, ok := comp.Overrides["CARGO_TARGET_X86_64_UNKNOWN_LINUX_GNU_LINKER"]
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestCompose_LinkArgsWithoutCompiler(t *testing.T) {
	comp := compose(t, osenv.Map{
		"CORROSION_LINKER_LANGUAGES": "Fortran",
		"CORROSION_LINK_ARGS":        "-lgfortran",
	}, linuxTarget)

	assert.Equal(t, map[string]string{
		"RUSTFLAGS": " -Cdefault-linker-libraries=yes -Clink-args=-lgfortran",
	}, comp.Overrides)
	assert.Equal(t, "-Cdefault-linker-libraries=yes -Clink-args=-lgfortran", comp.Flags)
}

func TestCompose_FlagMerge(t *testing.T) {
	tests := []struct {
		name string
		env  osenv.Map
		want map[string]string
	}{
		{
			name: "source prepended to destination",
			env:  osenv.Map{"CORROSION_CFLAGS": "-a", "CFLAGS": "-b"},
			want: map[string]string{"CFLAGS": "-a -b"},
		},
		{
			name: "source only",
			env:  osenv.Map{"CORROSION_CFLAGS": "-a"},
			want: map[string]string{"CFLAGS": "-a"},
		},
		{
			name: "destination only",
			env:  osenv.Map{"CFLAGS": "-b"},
			want: map[string]string{},
		},
		{
			name: "neither",
			env:  osenv.Map{},
			want: map[string]string{},
		},
		{
			name: "empty source with destination",
			env:  osenv.Map{"CORROSION_CXXFLAGS": "", "CXXFLAGS": "-b"},
			want: map[string]string{"CXXFLAGS": " -b"},
		},
		{
			name: "both variables",
			env: osenv.Map{
				"CORROSION_CFLAGS":   "-DC",
				"CORROSION_CXXFLAGS": "-DCXX",
				"CXXFLAGS":           "-std=c++20",
			},
			want: map[string]string{"CFLAGS": "-DC", "CXXFLAGS": "-DCXX -std=c++20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp := compose(t, tt.env, linuxTarget)
			assert.Equal(t, tt.want, comp.Overrides)
		})
	}
}

func TestCompose_Union(t *testing.T) {
	comp := compose(t, osenv.Map{
		"CORROSION_LINKER_LANGUAGES": "CXX",
		"CORROSION_CXX_COMPILER":     "g++",
		"CORROSION_CXXFLAGS":         "-fPIC",
		"PATH":                       "/usr/bin",
	}, "i686-pc-windows-gnu")

	assert.Equal(t, map[string]string{
		"CARGO_TARGET_I686_PC_WINDOWS_GNU_LINKER": "g++",
		"RUSTFLAGS":                               " -Cdefault-linker-libraries=yes",
		"CXXFLAGS":                                "-fPIC",
	}, comp.Overrides)
}
