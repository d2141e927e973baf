package nlp

import "strings"

// RuleMorph is the default Morph: a dictionary of common Russian first names
// with suffix-based fallback rules.
type RuleMorph struct{}

func NewRuleMorph() *RuleMorph { return &RuleMorph{} }

var masculineNames = map[string]struct{}{
	"александр": {}, "алексей": {}, "анатолий": {}, "андрей": {}, "антон": {},
	"аркадий": {}, "артем": {}, "артём": {}, "борис": {}, "вадим": {},
	"валентин": {}, "валерий": {}, "василий": {}, "виктор": {}, "виталий": {},
	"владимир": {}, "владислав": {}, "вячеслав": {}, "геннадий": {}, "георгий": {},
	"глеб": {}, "григорий": {}, "даниил": {}, "данила": {}, "денис": {},
	"дмитрий": {}, "евгений": {}, "егор": {}, "иван": {}, "игорь": {},
	"илья": {}, "кирилл": {}, "константин": {}, "кузьма": {}, "лев": {},
	"леонид": {}, "лука": {}, "максим": {}, "матвей": {}, "михаил": {},
	"никита": {}, "николай": {}, "олег": {}, "павел": {}, "петр": {},
	"пётр": {}, "роман": {}, "руслан": {}, "савва": {}, "семен": {},
	"семён": {}, "сергей": {}, "станислав": {}, "степан": {}, "тимофей": {},
	"федор": {}, "фёдор": {}, "фома": {}, "эдуард": {}, "юрий": {}, "ярослав": {},
}

var feminineNames = map[string]struct{}{
	"александра": {}, "алена": {}, "алёна": {}, "алина": {}, "алла": {},
	"анастасия": {}, "ангелина": {}, "анна": {}, "антонина": {}, "валентина": {},
	"валерия": {}, "вера": {}, "вероника": {}, "виктория": {}, "галина": {},
	"дарья": {}, "диана": {}, "евгения": {}, "екатерина": {}, "елена": {},
	"елизавета": {}, "жанна": {}, "зинаида": {}, "инна": {}, "ирина": {},
	"кристина": {}, "ксения": {}, "лариса": {}, "лидия": {}, "любовь": {},
	"людмила": {}, "маргарита": {}, "марина": {}, "мария": {}, "надежда": {},
	"наталия": {}, "наталья": {}, "нина": {}, "оксана": {}, "ольга": {},
	"полина": {}, "раиса": {}, "светлана": {}, "софия": {}, "софья": {},
	"тамара": {}, "татьяна": {}, "ульяна": {}, "юлия": {}, "яна": {},
}

// Gender resolves the grammatical gender of a Russian first name. Dictionary
// entries win; otherwise names ending in -а/-я are tagged feminine and names
// ending in a consonant or -й masculine. Anything else is unknown.
func (m *RuleMorph) Gender(word string) Gender {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return GenderUnknown
	}
	if _, ok := masculineNames[w]; ok {
		return GenderMasculine
	}
	if _, ok := feminineNames[w]; ok {
		return GenderFeminine
	}
	runes := []rune(w)
	last := runes[len(runes)-1]
	switch last {
	case 'а', 'я':
		return GenderFeminine
	case 'б', 'в', 'г', 'д', 'ж', 'з', 'к', 'л', 'м', 'н', 'п', 'р', 'с', 'т', 'ф', 'х', 'ц', 'ч', 'ш', 'щ', 'й':
		return GenderMasculine
	default:
		return GenderUnknown
	}
}
