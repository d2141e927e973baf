package fields

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Header synonym sets. These are configuration: each extractor names its
// labels, and the union of all labels forms the boundary registry that
// terminates any section span.
var (
	labelsEducation      = []string{"Образование"}
	labelsExperience     = []string{"Опыт работы", "Профессиональный опыт"}
	labelsLanguages      = []string{"Владение языками", "Знание языков", "Языки"}
	labelsSkills         = []string{"Ключевые навыки", "Профессиональные навыки", "Навыки"}
	labelsCertifications = []string{"Сертификаты", "Сертификации", "Certificates", "Повышение квалификации", "Курсы"}
	labelsQualities      = []string{"Личностные качества", "Personal qualities", "Обо мне", "Дополнительная информация"}
	labelsSummary        = []string{"Summary", "Обо мне", "Кратко о себе", "Дополнительная информация"}
	labelsSalary         = []string{"Заработная плата", "Желаемая зарплата", "Зарплата", "Желаемый доход"}
	labelsSchedule       = []string{"График работы", "Тип занятости", "Занятость"}
	labelsDesiredRole    = []string{"Желаемая должность и зарплата"}
	labelsSpecialization = []string{"Специализации"}
	labelsContacts       = []string{"Контакты", "Контактная информация"}
)

var allLabels = flatten(
	labelsEducation, labelsExperience, labelsLanguages, labelsSkills,
	labelsCertifications, labelsQualities, labelsSummary, labelsSalary,
	labelsSchedule, labelsDesiredRole, labelsSpecialization, labelsContacts,
)

var boundaryRe = regexp.MustCompile(`(?i)(?:` + labelPattern(allLabels) + `)`)

var (
	reEducationSec      = sectionRe(labelsEducation)
	reLanguagesSec      = sectionRe(labelsLanguages)
	reSkillsSec         = sectionRe(labelsSkills)
	reCertificationsSec = sectionRe(labelsCertifications)
	reQualitiesSec      = sectionRe(labelsQualities)
	reSummarySec        = sectionRe(labelsSummary)
	reSalarySec         = sectionRe(labelsSalary)
	reScheduleSec       = sectionRe(labelsSchedule)
	reDesiredRoleSec    = sectionRe(labelsDesiredRole)
	reSpecializationSec = sectionRe(labelsSpecialization)
)

func flatten(groups ...[]string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, g := range groups {
		for _, l := range g {
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	return out
}

func labelPattern(labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return strings.Join(quoted, "|")
}

// sectionRe matches any of the labels followed by an optional separator.
// Group 1 delimits the label itself for the word-boundary check.
func sectionRe(labels []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(` + labelPattern(labels) + `)\s*[:\-–—]?\s*`)
}

// sectionSpan returns the text between the first occurrence of any of the
// section's labels and the next recognized header (or end of text). The
// earliest label match wins; synonyms carry no priority beyond position.
func sectionSpan(text string, re *regexp.Regexp) string {
	start, ok := findLabel(text, re)
	if !ok {
		return ""
	}
	rest := text[start:]
	if b := nextHeaderIndex(rest); b >= 0 {
		rest = rest[:b]
	}
	return strings.TrimSpace(rest)
}

// findLabel locates the first label occurrence that sits on a word boundary
// and returns the offset just past the label and its separator.
func findLabel(text string, re *regexp.Regexp) (int, bool) {
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if isWordBoundary(text, m[2], m[3]) {
			return m[1], true
		}
	}
	return 0, false
}

// nextHeaderIndex finds the first boundary-registry header occurrence in s,
// requiring word boundaries so labels embedded inside longer words do not
// terminate a span.
func nextHeaderIndex(s string) int {
	for _, m := range boundaryRe.FindAllStringIndex(s, -1) {
		if isWordBoundary(s, m[0], m[1]) {
			return m[0]
		}
	}
	return -1
}

// isWordBoundary reports whether s[start:end] is not flanked by letters.
// Go's \b is ASCII-only, so Cyrillic boundaries are checked by hand.
func isWordBoundary(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); unicode.IsLetter(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
