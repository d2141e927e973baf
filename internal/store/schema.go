package store

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildRecordSchema describes the candidate record shape: every field key
// must be present, string-valued except the integer id. Extra keys are
// rejected so drift in the assembler is caught at write time.
func BuildRecordSchema() map[string]interface{} {
	stringProp := map[string]interface{}{"type": "string"}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"Summary":                  stringProp,
			"Категория образования":    stringProp,
			"Стаж работы (лет)":        stringProp,
			"Пол":                      stringProp,
			"Направление деятельности": stringProp,
			"Последняя должность":      stringProp,
			"Владение языками":         stringProp,
			"График работы":            stringProp,
			"Заработная плата":         stringProp,
			"Личностные качества":      stringProp,
			"Soft Skills":              stringProp,
			"Hard Skills":              stringProp,
			"Сертификации":             stringProp,
			"ФИО":                      stringProp,
			"Телефон":                  stringProp,
			"Email":                    stringProp,
			"id": map[string]interface{}{
				"type":    "integer",
				"minimum": 1,
			},
		},
		"required": []string{
			"Summary", "Категория образования", "Стаж работы (лет)", "Пол",
			"Направление деятельности", "Последняя должность", "Владение языками",
			"График работы", "Заработная плата", "Личностные качества",
			"Soft Skills", "Hard Skills", "Сертификации", "id",
			"ФИО", "Телефон", "Email",
		},
		"additionalProperties": false,
	}
}

func compileRecordSchema() (*jsonschema.Schema, error) {
	raw, err := json.Marshal(BuildRecordSchema())
	if err != nil {
		return nil, err
	}
	return jsonschema.CompileString("candidate-record.json", string(raw))
}
