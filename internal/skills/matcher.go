package skills

import (
	"strings"

	"github.com/samber/lo"
)

// MatchVocabulary returns the ordered sublist of vocabulary entries whose
// lowercase form occurs in the lowercased text. Each entry appears at most
// once, in vocabulary order.
func MatchVocabulary(text string, vocabulary []string) []string {
	lowered := strings.ToLower(text)
	return lo.Filter(vocabulary, func(skill string, _ int) bool {
		return containsTerm(lowered, strings.ToLower(skill))
	})
}

// Match runs matching over the full vocabulary, treating a hit on any
// spelling variant as a hit on the canonical skill.
func (v *Vocabulary) Match(text string) []string {
	lowered := strings.ToLower(text)

	matched := lo.Filter(v.entries, func(e Entry, _ int) bool {
		if containsTerm(lowered, e.Name) {
			return true
		}
		for _, variant := range e.Variants {
			if containsTerm(lowered, variant) {
				return true
			}
		}
		return false
	})

	return lo.Map(matched, func(e Entry, _ int) string { return e.Name })
}

// containsTerm is substring containment ("java" hits inside "javascript"),
// except that short all-letter terms like "r" or "go" must stand alone:
// inside a longer word they would fire on almost any prose.
func containsTerm(text, term string) bool {
	if len(term) >= 3 || !isAllLetters(term) {
		return strings.Contains(text, term)
	}

	for from := 0; ; {
		i := strings.Index(text[from:], term)
		if i < 0 {
			return false
		}

		start := from + i
		end := start + len(term)
		if (start == 0 || !isWordChar(text[start-1])) &&
			(end == len(text) || !isWordChar(text[end])) {
			return true
		}
		from = start + 1
	}
}

func isAllLetters(s string) bool {
	for _, c := range s {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
