package fields

import (
	"regexp"

	"github.com/hrkit/resume-pipeline/constants"
)

// educationTiers are tested in fixed priority order; the first tier whose
// keywords occur in the education section wins.
var educationTiers = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`(?i)Магистр|Магистратура`), constants.EducationMaster},
	{regexp.MustCompile(`(?i)Бакалавр|Бакалавриат`), constants.EducationBachelor},
	{regexp.MustCompile(`(?i)Доктор|Аспирантура`), constants.EducationDoctor},
	{regexp.MustCompile(`(?i)Высшее`), constants.EducationHigher},
	{regexp.MustCompile(`(?i)Среднее профессиональное`), constants.EducationVocational},
}

// EducationCategory classifies the education section into one of the fixed
// category labels, or empty when no section or keyword is present.
func EducationCategory(text string) string {
	section := sectionSpan(text, reEducationSec)
	if section == "" {
		return ""
	}
	for _, tier := range educationTiers {
		if tier.re.MatchString(section) {
			return tier.label
		}
	}
	return ""
}
