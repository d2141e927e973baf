package constants

// Education category labels, in the tier order tested by the education
// extractor. The first matching tier wins.
const (
	EducationMaster     = "Магистр"
	EducationBachelor   = "Бакалавр"
	EducationDoctor     = "Доктор"
	EducationHigher     = "Высшее"
	EducationVocational = "Среднее профессиональное"
)

// Gender labels as they appear in assembled records.
const (
	GenderMale   = "Мужчина"
	GenderFemale = "Женщина"
)
