package fields

import (
	"regexp"
	"strings"
)

var (
	reBlankLines = regexp.MustCompile(`\n+`)
	reTrailBreak = regexp.MustCompile(`[ \t]+\n`)
	reLeadBreak  = regexp.MustCompile(`\n[ \t]+`)
	reSpaceRuns  = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes recovered text into the single-line form all field
// extractors operate on: unified line endings, collapsed blank lines,
// whitespace stripped around breaks, then every remaining whitespace run
// reduced to a single space. Idempotent.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = reBlankLines.ReplaceAllString(text, "\n")
	text = reTrailBreak.ReplaceAllString(text, "\n")
	text = reLeadBreak.ReplaceAllString(text, "\n")
	text = reSpaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// collapseSpaces trims and reduces internal whitespace runs to single
// spaces; used by the final record cleanup pass.
func collapseSpaces(s string) string {
	return strings.TrimSpace(reSpaceRuns.ReplaceAllString(s, " "))
}
