package fields

import (
	"testing"
	"time"
)

const sampleResume = `Иванов Иван Иванович
Мужчина, 30 лет
Телефон: +7 911 123-45-67
Email: ivanov@example.com
Желаемая зарплата: 120 000 руб.
Занятость: полная
Опыт работы
Январь 2019 — Декабрь 2021 Инженер по данным, ООО Ромашка
Образование
Бакалавр, СПбГУ
Владение языками: русский, английский
Ключевые навыки: Python, SQL, лидерство
`

func TestAssemble(t *testing.T) {
	x := NewExtractor(nil, nil, nil)
	x.now = func() time.Time {
		return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	}

	rec := x.Assemble(sampleResume, 7)

	if rec.ID != 7 {
		t.Errorf("ID = %d", rec.ID)
	}
	if rec.FullName != "Иванов Иван Иванович" {
		t.Errorf("FullName = %q", rec.FullName)
	}
	if rec.Gender != "Мужчина" {
		t.Errorf("Gender = %q", rec.Gender)
	}
	if rec.Phone != "+7 911 123-45-67" {
		t.Errorf("Phone = %q", rec.Phone)
	}
	if rec.Email != "ivanov@example.com" {
		t.Errorf("Email = %q", rec.Email)
	}
	if rec.ExperienceYears != "2" {
		t.Errorf("ExperienceYears = %q", rec.ExperienceYears)
	}
	if rec.EducationCategory != "Бакалавр" {
		t.Errorf("EducationCategory = %q", rec.EducationCategory)
	}
	if rec.LastPosition != "Инженер по данным, ООО Ромашка" {
		t.Errorf("LastPosition = %q", rec.LastPosition)
	}
	if rec.Languages != "русский, английский" {
		t.Errorf("Languages = %q", rec.Languages)
	}
	if rec.SoftSkills != "лидерство" {
		t.Errorf("SoftSkills = %q", rec.SoftSkills)
	}
	if rec.HardSkills != "Python, SQL" {
		t.Errorf("HardSkills = %q", rec.HardSkills)
	}
	if rec.Salary != "120 000 руб." {
		t.Errorf("Salary = %q", rec.Salary)
	}
	if rec.WorkSchedule != "полная" {
		t.Errorf("WorkSchedule = %q", rec.WorkSchedule)
	}
	// Fields with no signal in the sample stay empty.
	if rec.Certifications != "" || rec.Summary != "" || rec.FieldOfActivity != "" {
		t.Errorf("expected empty optional fields, got %+v", rec)
	}
}

func TestAssembleEmptyText(t *testing.T) {
	x := NewExtractor(nil, nil, nil)
	rec := x.Assemble("", 1)
	if rec.ID != 1 {
		t.Errorf("ID = %d", rec.ID)
	}
	for _, p := range rec.stringFields() {
		if *p != "" {
			t.Fatalf("expected all string fields empty, got %+v", rec)
		}
	}
}

func TestCleanupCollapsesWhitespace(t *testing.T) {
	rec := Record{FullName: "  Иванов   Иван  ", HardSkills: "Python,\tSQL"}
	rec.cleanup()
	if rec.FullName != "Иванов Иван" {
		t.Errorf("FullName = %q", rec.FullName)
	}
	if rec.HardSkills != "Python, SQL" {
		t.Errorf("HardSkills = %q", rec.HardSkills)
	}
}
