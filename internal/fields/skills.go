package fields

import (
	"regexp"
	"strings"
)

var reSkillSplit = regexp.MustCompile(`[,;]`)

// softSkillKeywords mark a skill token as a soft skill when any of them
// occurs in it (case-insensitive substring). Everything else is a hard skill.
var softSkillKeywords = []string{
	"коммуникация", "лидерство", "организация", "управление",
	"ведение переговоров", "командная работа", "обучение",
	"ответственность", "стрессоустойчивость", "внимательность",
	"креативность", "инициативность", "дисциплина",
}

// Skills splits the skills section on commas/semicolons and buckets each
// token into soft vs hard skills. Both buckets are joined with ", ".
func Skills(text string) (soft, hard string) {
	section := sectionSpan(text, reSkillsSec)
	if section == "" {
		return "", ""
	}
	var softList, hardList []string
	for _, tok := range reSkillSplit.Split(section, -1) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if isSoftSkill(tok) {
			softList = append(softList, tok)
		} else {
			hardList = append(hardList, tok)
		}
	}
	return strings.Join(softList, ", "), strings.Join(hardList, ", ")
}

func isSoftSkill(tok string) bool {
	lower := strings.ToLower(tok)
	for _, kw := range softSkillKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
