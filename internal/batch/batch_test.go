package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hrkit/resume-pipeline/internal/common"
	"github.com/hrkit/resume-pipeline/internal/extract"
)

// stubExtractor fails files whose names contain "bad" and panics on files
// whose names contain "panic".
type stubExtractor struct {
	calls atomic.Int64
}

func (s *stubExtractor) Extract(_ context.Context, path string) extract.Outcome {
	s.calls.Add(1)
	name := filepath.Base(path)
	if strings.Contains(name, "panic") {
		panic("boom")
	}
	if strings.Contains(name, "bad") {
		return extract.Outcome{Filename: name, Err: common.ErrDecode}
	}
	return extract.Outcome{Filename: name, Text: "text of " + name}
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestProcessFolderFiltersUnsupported(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.pdf", "b.docx", "c.txt", "skip.xyz", "skip.png")
	if err := os.Mkdir(filepath.Join(dir, "nested.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}

	stub := &stubExtractor{}
	o := New(stub, nil, WithWorkers(2))
	outcomes, err := o.ProcessFolder(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("got %d outcomes, want 3", len(outcomes))
	}
	if got := stub.calls.Load(); got != 3 {
		t.Errorf("extractor called %d times, want 3", got)
	}
	var names []string
	for _, out := range outcomes {
		names = append(names, out.Filename)
	}
	sort.Strings(names)
	want := []string{"a.pdf", "b.docx", "c.txt"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names = %v, want %v", names, want)
			break
		}
	}
}

func TestProcessFolderIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "good.txt", "bad.txt", "panic.txt")

	o := New(&stubExtractor{}, nil, WithWorkers(3))
	outcomes, err := o.ProcessFolder(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("got %d outcomes, want 3", len(outcomes))
	}

	byName := map[string]extract.Outcome{}
	for _, out := range outcomes {
		byName[out.Filename] = out
	}
	if !byName["good.txt"].OK() {
		t.Errorf("good.txt failed: %v", byName["good.txt"].Err)
	}
	if !errors.Is(byName["bad.txt"].Err, common.ErrDecode) {
		t.Errorf("bad.txt err = %v", byName["bad.txt"].Err)
	}
	if !errors.Is(byName["panic.txt"].Err, common.ErrProcessing) {
		t.Errorf("panic.txt err = %v", byName["panic.txt"].Err)
	}
}

func TestProcessFolderEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "only.xyz")

	o := New(&stubExtractor{}, nil)
	outcomes, err := o.ProcessFolder(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if outcomes != nil {
		t.Errorf("outcomes = %v, want nil", outcomes)
	}
}

func TestProcessFolderMissingDir(t *testing.T) {
	o := New(&stubExtractor{}, nil)
	if _, err := o.ProcessFolder(context.Background(), filepath.Join(t.TempDir(), "absent")); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestProcessFolderNotADir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "f.txt")
	o := New(&stubExtractor{}, nil)
	if _, err := o.ProcessFolder(context.Background(), filepath.Join(dir, "f.txt")); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestStatsOf(t *testing.T) {
	outcomes := []extract.Outcome{
		{Filename: "a"},
		{Filename: "b", Err: common.ErrDecode},
		{Filename: "c"},
	}
	s := statsOf(outcomes, 0)
	if s.Discovered != 3 || s.Succeeded != 2 || s.Failed != 1 {
		t.Errorf("stats = %+v", s)
	}
}
