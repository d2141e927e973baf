package nlp

import (
	"strings"
	"unicode"
)

// RuleTagger is the default EntityTagger: it detects runs of capitalized
// Cyrillic words and accepts those that carry Russian name morphology
// (a patronymic or a surname suffix).
type RuleTagger struct{}

func NewRuleTagger() *RuleTagger { return &RuleTagger{} }

var patronymicSuffixes = []string{
	"ович", "евич", "ьич", "ич",
	"овна", "евна", "ична", "инична",
}

var surnameSuffixes = []string{
	"ов", "ова", "ев", "ева", "ёв", "ёва",
	"ин", "ина", "ын", "ына",
	"ский", "ская", "цкий", "цкая",
	"енко", "ук", "юк", "чук",
}

// People scans for sequences of two or three capitalized Cyrillic words and
// returns those that look like a person name.
func (t *RuleTagger) People(text string) []string {
	words := strings.Fields(text)
	var out []string
	for i := 0; i < len(words); i++ {
		run := capitalizedRun(words, i, 3)
		if len(run) < 2 {
			continue
		}
		// Prefer the longest plausible span starting here.
		for n := len(run); n >= 2; n-- {
			cand := run[:n]
			if looksLikePerson(cand) {
				out = append(out, strings.Join(cand, " "))
				i += n - 1
				break
			}
		}
	}
	return out
}

// capitalizedRun collects up to max consecutive capitalized Cyrillic words
// starting at index i, with trailing punctuation stripped.
func capitalizedRun(words []string, i, max int) []string {
	var run []string
	for ; i < len(words) && len(run) < max; i++ {
		w := strings.TrimRight(words[i], ".,;:!?")
		if !isCapitalizedCyrillic(w) {
			break
		}
		run = append(run, w)
	}
	return run
}

func looksLikePerson(words []string) bool {
	for _, w := range words {
		lw := strings.ToLower(w)
		if hasAnySuffix(lw, patronymicSuffixes) || hasAnySuffix(lw, surnameSuffixes) {
			return true
		}
	}
	return false
}

func hasAnySuffix(w string, suffixes []string) bool {
	for _, s := range suffixes {
		if len(w) > len(s)+2 && strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

func isCapitalizedCyrillic(w string) bool {
	runes := []rune(w)
	if len(runes) < 2 {
		return false
	}
	if !unicode.IsUpper(runes[0]) || !unicode.Is(unicode.Cyrillic, runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLower(r) || !unicode.Is(unicode.Cyrillic, r) {
			return false
		}
	}
	return true
}
