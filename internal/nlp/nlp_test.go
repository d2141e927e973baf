package nlp

import (
	"reflect"
	"testing"
)

func TestRuleTaggerPeople(t *testing.T) {
	tagger := NewRuleTagger()

	tests := []struct {
		text string
		want []string
	}{
		{"Иванов Иван Иванович инженер", []string{"Иванов Иван Иванович"}},
		{"Петрова Анна работает в ООО", []string{"Петрова Анна"}},
		// Capitalized run without name morphology is rejected.
		{"Москва Россия", nil},
		{"строчные слова", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if got := tagger.People(tt.text); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("People(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestRuleMorphGender(t *testing.T) {
	morph := NewRuleMorph()

	tests := []struct {
		word string
		want Gender
	}{
		{"Иван", GenderMasculine},
		{"Мария", GenderFeminine},
		// Dictionary beats the suffix rule: Никита ends in -а but is masculine.
		{"Никита", GenderMasculine},
		// Suffix fallback for words outside the dictionary.
		{"Бобров", GenderMasculine},
		{"Глафира", GenderFeminine},
		{"", GenderUnknown},
	}
	for _, tt := range tests {
		if got := morph.Gender(tt.word); got != tt.want {
			t.Errorf("Gender(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestNameHelpers(t *testing.T) {
	if !KnownFirstName("Иван") || KnownFirstName("Стол") {
		t.Error("KnownFirstName misclassified")
	}
	if !IsPatronymic("Иванович") || IsPatronymic("инженер") {
		t.Error("IsPatronymic misclassified")
	}
	if !IsSurname("Кузнецов") || IsSurname("работа") {
		t.Error("IsSurname misclassified")
	}
}
