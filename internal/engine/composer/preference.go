package composer

import "go.trai.ch/cargowrap/internal/core/domain"

// Prefer decides which of the running choice and a candidate drives linking.
// current is nil before the first language is folded in.
//
// A numbered candidate replaces an unnumbered (or absent) running choice.
// Between two numbered languages the candidate wins only when its preference
// is strictly greater. An unnumbered candidate never replaces an existing
// running choice.
func Prefer(current *domain.LinkerLanguage, candidate domain.LinkerLanguage) *domain.LinkerLanguage {
	if !candidate.HasPreference() {
		if current != nil {
			return current
		}
		return &candidate
	}

	if current == nil || !current.HasPreference() {
		return &candidate
	}

	if *candidate.Preference > *current.Preference {
		return &candidate
	}
	return current
}

// Resolve folds Prefer over langs in order. It returns nil for an empty list.
func Resolve(langs []domain.LinkerLanguage) *domain.LinkerChoice {
	var current *domain.LinkerLanguage
	for _, lang := range langs {
		current = Prefer(current, lang)
	}

	if current == nil {
		return nil
	}
	return &domain.LinkerChoice{Language: *current}
}
