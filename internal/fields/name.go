package fields

import (
	"regexp"
	"strings"

	"github.com/hrkit/resume-pipeline/internal/nlp"
)

// reCyrillicName matches two or three consecutive capitalized Cyrillic words
// at the start of the span; the last-resort name strategy.
var reCyrillicName = regexp.MustCompile(`^([А-ЯЁ][а-яё]+\s+[А-ЯЁ][а-яё]+(?:\s+[А-ЯЁ][а-яё]+)?)`)

// nameStrategy is one entry in the ordered fallback cascade. Strategies are
// tried in sequence; the first non-empty result wins.
type nameStrategy struct {
	name string
	fn   func(*Extractor, string) string
}

var nameStrategies = []nameStrategy{
	{"ner", (*Extractor).nerName},
	{"heuristic", (*Extractor).heuristicName},
	{"regex", (*Extractor).regexName},
}

// Name extracts the candidate's full name from the first lines of the text.
func (x *Extractor) Name(text string) string {
	span := firstLines(text, 5)
	for _, s := range nameStrategies {
		if v := s.fn(x, span); v != "" {
			return v
		}
	}
	return ""
}

func (x *Extractor) nerName(span string) string {
	people := x.tagger.People(span)
	if len(people) == 0 {
		return ""
	}
	return people[0]
}

// heuristicName assembles a name around a dictionary first-name token:
// the following word if it is a patronymic, the neighbouring word if it
// looks like a surname. Absent parts are skipped.
func (x *Extractor) heuristicName(span string) string {
	words := strings.Fields(span)
	for i, w := range words {
		first := strings.TrimRight(w, ".,;:")
		if !nlp.KnownFirstName(first) {
			continue
		}
		var middle, last string
		if i+1 < len(words) && nlp.IsPatronymic(words[i+1]) {
			middle = strings.TrimRight(words[i+1], ".,;:")
		}
		if i > 0 && nlp.IsSurname(words[i-1]) {
			last = strings.TrimRight(words[i-1], ".,;:")
		} else {
			next := i + 1
			if middle != "" {
				next = i + 2
			}
			if next < len(words) && nlp.IsSurname(words[next]) {
				last = strings.TrimRight(words[next], ".,;:")
			}
		}
		parts := make([]string, 0, 3)
		for _, p := range []string{first, middle, last} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		return strings.Join(parts, " ")
	}
	return ""
}

func (x *Extractor) regexName(span string) string {
	if m := reCyrillicName.FindStringSubmatch(span); m != nil {
		return m[1]
	}
	return ""
}

func firstLines(text string, n int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
