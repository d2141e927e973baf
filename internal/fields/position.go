package fields

import "strings"

// LastPosition finds the text following the last experience-section header,
// locates the first date range inside it and returns the title that follows
// the range, cut at the next date range or recognized header.
func LastPosition(text string) string {
	tail := afterLastExperienceHeader(text)
	if tail == "" {
		return ""
	}
	lower := strings.ToLower(tail)
	loc := reDateRange.FindStringIndex(lower)
	if loc == nil {
		return ""
	}
	rest := tail[loc[1]:]
	if next := reDateRange.FindStringIndex(strings.ToLower(rest)); next != nil {
		rest = rest[:next[0]]
	}
	if b := nextHeaderIndex(rest); b >= 0 {
		rest = rest[:b]
	}
	return strings.TrimSpace(strings.TrimLeft(rest, " ,.;:–—-"))
}

// afterLastExperienceHeader returns the text after the last experience
// header occurrence, or "" when no header is present.
func afterLastExperienceHeader(text string) string {
	reExp := sectionRe(labelsExperience)
	matches := reExp.FindAllStringSubmatchIndex(text, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		if isWordBoundary(text, m[2], m[3]) {
			return text[m[1]:]
		}
	}
	return ""
}
