package composer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargowrap/internal/core/domain"
	"go.trai.ch/cargowrap/internal/engine/composer"
)

func lang(name string, pref ...int) domain.LinkerLanguage {
	l := domain.LinkerLanguage{Name: name}
	if len(pref) > 0 {
		p := pref[0]
		l.Preference = &p
	}
	return l
}

func TestPrefer(t *testing.T) {
	plain := lang("A")
	low := lang("LOW", 3)
	high := lang("HIGH", 7)
	same := lang("SAME", 3)

	tests := []struct {
		name      string
		current   *domain.LinkerLanguage
		candidate domain.LinkerLanguage
		want      string
	}{
		{name: "first unnumbered becomes running choice", current: nil, candidate: plain, want: "A"},
		{name: "first numbered becomes running choice", current: nil, candidate: low, want: "LOW"},
		{name: "numbered supersedes unnumbered", current: &plain, candidate: high, want: "HIGH"},
		{name: "unnumbered keeps numbered", current: &low, candidate: plain, want: "LOW"},
		{name: "unnumbered keeps unnumbered", current: &plain, candidate: lang("B"), want: "A"},
		{name: "greater preference replaces", current: &low, candidate: high, want: "HIGH"},
		{name: "smaller preference keeps current", current: &high, candidate: low, want: "HIGH"},
		{name: "equal preference keeps current", current: &low, candidate: same, want: "LOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := composer.Prefer(tt.current, tt.candidate)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		langs []domain.LinkerLanguage
		want  string
	}{
		{name: "single", langs: []domain.LinkerLanguage{lang("C")}, want: "C"},
		{name: "numbered wins over earlier unnumbered", langs: []domain.LinkerLanguage{lang("A"), lang("B", 5)}, want: "B"},
		{name: "numbered kept over later unnumbered", langs: []domain.LinkerLanguage{lang("A", 5), lang("B")}, want: "A"},
		{name: "larger preference wins", langs: []domain.LinkerLanguage{lang("A", 3), lang("B", 7)}, want: "B"},
		{name: "larger preference wins regardless of order", langs: []domain.LinkerLanguage{lang("B", 7), lang("A", 3)}, want: "B"},
		{name: "negative preferences", langs: []domain.LinkerLanguage{lang("A", -1), lang("B", -5)}, want: "A"},
		{name: "ties keep first", langs: []domain.LinkerLanguage{lang("C", 1), lang("CXX", 1)}, want: "C"},
		{
			name:  "mixed list",
			langs: []domain.LinkerLanguage{lang("C"), lang("CXX", 2), lang("Fortran"), lang("CUDA", 10), lang("ASM", 4)},
			want:  "CUDA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choice := composer.Resolve(tt.langs)
			require.NotNil(t, choice)
			assert.Equal(t, tt.want, choice.Language.Name)
		})
	}
}

func TestResolve_Empty(t *testing.T) {
	assert.Nil(t, composer.Resolve(nil))
	assert.Nil(t, composer.Resolve([]domain.LinkerLanguage{}))
}

func TestResolve_Deterministic(t *testing.T) {
	langs := []domain.LinkerLanguage{lang("A", 3), lang("B", 7)}

	first := composer.Resolve(langs)
	require.NotNil(t, first)
	for range 100 {
		assert.Equal(t, first, composer.Resolve(langs))
	}
}
