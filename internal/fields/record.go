// Package fields turns normalized resume text into a structured candidate
// record via a fixed set of independent rule-based extractors. Every
// extractor is total: no signal means an empty string, never an error.
package fields

import (
	"log/slog"
	"time"

	"github.com/hrkit/resume-pipeline/internal/nlp"
)

// Record is the fixed-shape candidate record. Every field is always present
// in the serialized form; absence of a signal is an empty string. JSON keys
// match the record files consumed by the downstream search layer.
type Record struct {
	Summary           string `json:"Summary"`
	EducationCategory string `json:"Категория образования"`
	ExperienceYears   string `json:"Стаж работы (лет)"`
	Gender            string `json:"Пол"`
	FieldOfActivity   string `json:"Направление деятельности"`
	LastPosition      string `json:"Последняя должность"`
	Languages         string `json:"Владение языками"`
	WorkSchedule      string `json:"График работы"`
	Salary            string `json:"Заработная плата"`
	PersonalQualities string `json:"Личностные качества"`
	SoftSkills        string `json:"Soft Skills"`
	HardSkills        string `json:"Hard Skills"`
	Certifications    string `json:"Сертификации"`
	ID                int    `json:"id"`
	FullName          string `json:"ФИО"`
	Phone             string `json:"Телефон"`
	Email             string `json:"Email"`
}

// Extractor assembles candidate records. The NLP capabilities are injected
// once at startup and shared across all documents.
type Extractor struct {
	tagger nlp.EntityTagger
	morph  nlp.Morph
	now    func() time.Time
	logger *slog.Logger
}

func NewExtractor(tagger nlp.EntityTagger, morph nlp.Morph, logger *slog.Logger) *Extractor {
	if tagger == nil {
		tagger = nlp.NewRuleTagger()
	}
	if morph == nil {
		morph = nlp.NewRuleMorph()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{tagger: tagger, morph: morph, now: time.Now, logger: logger}
}

// Assemble runs every field extractor once over the normalized text and
// merges the results into one record. Extractors are independent and write
// disjoint fields, so their order does not matter.
func (x *Extractor) Assemble(text string, id int) Record {
	norm := Normalize(text)

	rec := Record{ID: id}
	rec.FullName = x.Name(norm)
	contact := ContactInfo(norm)
	rec.Phone = contact.Phone
	rec.Email = contact.Email
	rec.Gender = x.Gender(norm)
	rec.ExperienceYears = ExperienceYears(norm, x.now())
	rec.EducationCategory = EducationCategory(norm)
	rec.Languages = Languages(norm)
	rec.LastPosition = LastPosition(norm)
	rec.SoftSkills, rec.HardSkills = Skills(norm)
	rec.Certifications = Certifications(norm)
	rec.PersonalQualities = PersonalQualities(norm)
	rec.Summary = Summary(norm)
	rec.Salary = DesiredSalary(norm)
	rec.WorkSchedule = WorkSchedule(norm)
	rec.FieldOfActivity = FieldOfActivity(norm)

	rec.cleanup()
	x.logger.Debug("fields.assembled", "id", id, "name_found", rec.FullName != "")
	return rec
}

// cleanup trims and collapses internal whitespace in every string field.
func (r *Record) cleanup() {
	for _, p := range r.stringFields() {
		*p = collapseSpaces(*p)
	}
}

func (r *Record) stringFields() []*string {
	return []*string{
		&r.Summary, &r.EducationCategory, &r.ExperienceYears, &r.Gender,
		&r.FieldOfActivity, &r.LastPosition, &r.Languages, &r.WorkSchedule,
		&r.Salary, &r.PersonalQualities, &r.SoftSkills, &r.HardSkills,
		&r.Certifications, &r.FullName, &r.Phone, &r.Email,
	}
}
