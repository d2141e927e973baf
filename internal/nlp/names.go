package nlp

import "strings"

// KnownFirstName reports whether the word is a dictionary Russian first
// name of either gender.
func KnownFirstName(word string) bool {
	w := strings.ToLower(strings.TrimSpace(word))
	if _, ok := masculineNames[w]; ok {
		return true
	}
	_, ok := feminineNames[w]
	return ok
}

// IsPatronymic reports whether the word carries a Russian patronymic suffix.
func IsPatronymic(word string) bool {
	return hasAnySuffix(strings.ToLower(strings.TrimSpace(word)), patronymicSuffixes)
}

// IsSurname reports whether the word carries a common Russian surname suffix.
func IsSurname(word string) bool {
	return hasAnySuffix(strings.ToLower(strings.TrimSpace(word)), surnameSuffixes)
}
