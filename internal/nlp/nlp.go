// Package nlp declares the natural-language capabilities the field
// extractors depend on: person-entity tagging over short spans and
// grammatical gender lookup for a single token. The toolkit behind them is a
// black box; this package ships rule-based defaults so the pipeline works
// without external models.
package nlp

// Gender is a grammatical gender tag.
type Gender int

const (
	GenderUnknown Gender = iota
	GenderMasculine
	GenderFeminine
)

// EntityTagger recognizes person entities in a short text span and returns
// their surface forms in order of appearance.
type EntityTagger interface {
	People(text string) []string
}

// Morph resolves the grammatical gender of a single token (a first name).
type Morph interface {
	Gender(word string) Gender
}
