package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hrkit/resume-pipeline/internal/common"
)

// TextStore persists recovered text as <stem>.txt files, one per source
// document, in a flat directory.
type TextStore struct {
	dir    string
	logger *slog.Logger
}

func NewTextStore(dir string, logger *slog.Logger) (*TextStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating texts directory: %v", common.ErrProcessing, err)
	}
	return &TextStore{dir: dir, logger: logger}, nil
}

// Write stores text under the source filename's stem with a .txt extension.
// Two source files with the same stem overwrite each other; the last writer
// wins, matching flat-directory semantics.
func (s *TextStore) Write(sourceName, text string) (string, error) {
	stem := strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
	path := filepath.Join(s.dir, stem+".txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("%w: writing text file: %v", common.ErrProcessing, err)
	}
	s.logger.Debug("texts.written", "path", path)
	return path, nil
}

// List returns the .txt files in the directory in lexicographic order.
func (s *TextStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading texts directory: %v", common.ErrProcessing, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
