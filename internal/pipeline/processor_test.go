package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hrkit/resume-pipeline/internal/batch"
	"github.com/hrkit/resume-pipeline/internal/extract"
	"github.com/hrkit/resume-pipeline/internal/fields"
	"github.com/hrkit/resume-pipeline/internal/store"
)

const goodResume = `Иванов Иван Иванович
Мужчина
Телефон: +7 911 123-45-67
Email: ivanov@example.com
Опыт работы
Январь 2019 — Декабрь 2021 Инженер по данным, ООО Ромашка
Образование
Бакалавр, СПбГУ
Ключевые навыки: Python, SQL, лидерство
`

func newTestProcessor(t *testing.T) (*Processor, string, string) {
	t.Helper()
	textsDir := filepath.Join(t.TempDir(), "texts")
	recordsDir := filepath.Join(t.TempDir(), "records")

	texts, err := store.NewTextStore(textsDir, nil)
	if err != nil {
		t.Fatal(err)
	}
	records, err := store.NewRecordStore(recordsDir, nil)
	if err != nil {
		t.Fatal(err)
	}
	journal, err := store.OpenJournal(filepath.Join(t.TempDir(), "journal.db"), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = journal.Close() })

	extractor := extract.New(nil, extract.Config{}, nil)
	orchestrator := batch.New(extractor, nil, batch.WithWorkers(2))
	p := NewProcessor(orchestrator, fields.NewExtractor(nil, nil, nil), texts, records, journal, nil)
	return p, textsDir, recordsDir
}

func TestRunEndToEnd(t *testing.T) {
	p, textsDir, recordsDir := newTestProcessor(t)

	inDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(inDir, "ivanov.txt"), []byte(goodResume), 0o644); err != nil {
		t.Fatal(err)
	}
	// A corrupt document must not stop the run.
	if err := os.WriteFile(filepath.Join(inDir, "broken.docx"), []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	summary, err := p.Run(context.Background(), inDir)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Extraction.Discovered != 2 || summary.Extraction.Succeeded != 1 || summary.Extraction.Failed != 1 {
		t.Errorf("extraction stats = %+v", summary.Extraction)
	}
	if summary.RecordsWritten != 1 {
		t.Errorf("RecordsWritten = %d", summary.RecordsWritten)
	}

	if _, err := os.Stat(filepath.Join(textsDir, "ivanov.txt")); err != nil {
		t.Errorf("text file missing: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(recordsDir, "candidate1.json"))
	if err != nil {
		t.Fatal(err)
	}
	var rec map[string]interface{}
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatal(err)
	}
	if rec["ФИО"] != "Иванов Иван Иванович" {
		t.Errorf("ФИО = %v", rec["ФИО"])
	}
	if rec["Телефон"] != "+7 911 123-45-67" {
		t.Errorf("Телефон = %v", rec["Телефон"])
	}
	if rec["Email"] != "ivanov@example.com" {
		t.Errorf("Email = %v", rec["Email"])
	}
	if rec["Категория образования"] != "Бакалавр" {
		t.Errorf("Категория образования = %v", rec["Категория образования"])
	}
	if rec["Стаж работы (лет)"] != "2" {
		t.Errorf("Стаж работы (лет) = %v", rec["Стаж работы (лет)"])
	}
	if pos, _ := rec["Последняя должность"].(string); !strings.Contains(pos, "Инженер") {
		t.Errorf("Последняя должность = %v", rec["Последняя должность"])
	}
}

func TestRunAllocatesSequentialIDs(t *testing.T) {
	p, _, recordsDir := newTestProcessor(t)

	// Pre-existing records shift the id sequence.
	for _, name := range []string{"candidate3.json", "candidate7.json", "candidate1.json"} {
		seed := fields.Record{ID: 1}
		raw, _ := json.Marshal(seed)
		if err := os.WriteFile(filepath.Join(recordsDir, name), raw, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	inDir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(inDir, name), []byte(goodResume), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	summary, err := p.Run(context.Background(), inDir)
	if err != nil {
		t.Fatal(err)
	}
	if summary.RecordsWritten != 2 {
		t.Fatalf("RecordsWritten = %d", summary.RecordsWritten)
	}
	for _, name := range []string{"candidate8.json", "candidate9.json"} {
		if _, err := os.Stat(filepath.Join(recordsDir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestRunEmptyFolder(t *testing.T) {
	p, _, _ := newTestProcessor(t)
	summary, err := p.Run(context.Background(), t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Extraction.Discovered != 0 || summary.RecordsWritten != 0 {
		t.Errorf("summary = %+v", summary)
	}
}
