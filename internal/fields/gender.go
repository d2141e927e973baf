package fields

import (
	"regexp"
	"strings"

	"github.com/hrkit/resume-pipeline/constants"
	"github.com/hrkit/resume-pipeline/internal/nlp"
)

var reGenderWord = regexp.MustCompile(`(?i)мужчина|женщина`)

// Gender returns the candidate's gender label. A literal Мужчина/Женщина
// token anywhere in the text wins; otherwise the grammatical gender of the
// extracted name's first token decides. Unknown yields an empty string.
func (x *Extractor) Gender(text string) string {
	for _, m := range reGenderWord.FindAllStringIndex(text, -1) {
		if !isWordBoundary(text, m[0], m[1]) {
			continue
		}
		if strings.EqualFold(text[m[0]:m[1]], "мужчина") {
			return constants.GenderMale
		}
		return constants.GenderFemale
	}

	name := x.Name(text)
	if name == "" {
		return ""
	}
	first := strings.Fields(name)[0]
	switch x.morph.Gender(first) {
	case nlp.GenderMasculine:
		return constants.GenderMale
	case nlp.GenderFeminine:
		return constants.GenderFemale
	default:
		return ""
	}
}
