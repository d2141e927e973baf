package fields

import "strings"

// The remaining extractors are pure section-span lookups configured with
// their header synonym sets.

// Languages returns the language-proficiency section content.
func Languages(text string) string {
	return sectionSpan(text, reLanguagesSec)
}

// Certifications returns the certifications/courses section content.
func Certifications(text string) string {
	return sectionSpan(text, reCertificationsSec)
}

// PersonalQualities returns the personal-qualities section content.
func PersonalQualities(text string) string {
	return sectionSpan(text, reQualitiesSec)
}

// Summary returns the about-me/summary section content.
func Summary(text string) string {
	return sectionSpan(text, reSummarySec)
}

// DesiredSalary returns the value following a salary label.
func DesiredSalary(text string) string {
	return sectionSpan(text, reSalarySec)
}

// WorkSchedule returns the value following a schedule/employment label.
func WorkSchedule(text string) string {
	return sectionSpan(text, reScheduleSec)
}

// FieldOfActivity returns the desired line of work: the value of the
// Специализации sub-label when it directly follows the desired-role section,
// otherwise the section content itself.
func FieldOfActivity(text string) string {
	start, ok := findLabel(text, reDesiredRoleSec)
	if !ok {
		return ""
	}
	tail := text[start:]
	b := nextHeaderIndex(tail)
	if b < 0 {
		return strings.TrimSpace(tail)
	}
	if m := reSpecializationSec.FindStringSubmatchIndex(tail[b:]); m != nil && m[2] == 0 {
		rest := tail[b+m[1]:]
		if nb := nextHeaderIndex(rest); nb >= 0 {
			rest = rest[:nb]
		}
		if v := strings.TrimSpace(rest); v != "" {
			return v
		}
	}
	return strings.TrimSpace(tail[:b])
}
