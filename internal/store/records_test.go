package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hrkit/resume-pipeline/internal/common"
	"github.com/hrkit/resume-pipeline/internal/fields"
)

func TestNextID(t *testing.T) {
	dir := t.TempDir()
	s, err := NewRecordStore(dir, nil)
	if err != nil {
		t.Fatal(err)
	}

	id, err := s.NextID()
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Errorf("empty dir: NextID = %d, want 1", id)
	}

	// Gaps are preserved: ids continue from the maximum, not the count.
	for _, name := range []string{"candidate3.json", "candidate7.json", "candidate1.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	id, err = s.NextID()
	if err != nil {
		t.Fatal(err)
	}
	if id != 8 {
		t.Errorf("NextID = %d, want 8", id)
	}
}

func TestWriteAndList(t *testing.T) {
	dir := t.TempDir()
	s, err := NewRecordStore(dir, nil)
	if err != nil {
		t.Fatal(err)
	}

	rec := fields.Record{
		ID:       2,
		FullName: "Иванов Иван Иванович",
		Phone:    "+7 911 123-45-67",
		Email:    "ivanov@example.com",
		Gender:   "Мужчина",
	}
	path, err := s.Write(rec)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "candidate2.json" {
		t.Errorf("path = %q", path)
	}

	// Cyrillic must be stored literally, not as \u escapes.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "Иванов Иван Иванович") {
		t.Errorf("record file does not contain literal Cyrillic: %s", raw)
	}
	if strings.Contains(string(raw), `\u04`) {
		t.Error("record file contains escaped Cyrillic")
	}
	if !strings.Contains(string(raw), `"ФИО"`) {
		t.Errorf("missing Russian key: %s", raw)
	}

	recs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].FullName != rec.FullName || recs[0].ID != 2 {
		t.Errorf("List = %+v", recs)
	}
}

func TestWriteRejectsInvalidID(t *testing.T) {
	dir := t.TempDir()
	s, err := NewRecordStore(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Write(fields.Record{ID: 0}); !errors.Is(err, common.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestListOrdersByID(t *testing.T) {
	dir := t.TempDir()
	s, err := NewRecordStore(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []int{10, 2, 5} {
		if _, err := s.Write(fields.Record{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	recs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 || recs[0].ID != 2 || recs[1].ID != 5 || recs[2].ID != 10 {
		t.Errorf("List order = %+v", recs)
	}
}

func TestTextStore(t *testing.T) {
	dir := t.TempDir()
	s, err := NewTextStore(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	path, err := s.Write("resume.pdf", "Иванов Иван")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "resume.txt" {
		t.Errorf("path = %q", path)
	}

	if _, err := s.Write("b.docx", "x"); err != nil {
		t.Fatal(err)
	}
	paths, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 || filepath.Base(paths[0]) != "b.txt" || filepath.Base(paths[1]) != "resume.txt" {
		t.Errorf("List = %v", paths)
	}
}
