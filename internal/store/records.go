// Package store persists pipeline outputs: extracted text files, candidate
// record JSON files and the processing journal.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hrkit/resume-pipeline/internal/common"
	"github.com/hrkit/resume-pipeline/internal/fields"
)

var reCandidateFile = regexp.MustCompile(`^candidate(\d+)\.json$`)

// RecordStore writes candidate records as candidate<id>.json files into a
// single directory and allocates the next free identifier by scanning it.
type RecordStore struct {
	dir    string
	schema *jsonschema.Schema
	logger *slog.Logger
}

func NewRecordStore(dir string, logger *slog.Logger) (*RecordStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	schema, err := compileRecordSchema()
	if err != nil {
		return nil, fmt.Errorf("%w: compiling record schema: %v", common.ErrValidation, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating records directory: %v", common.ErrProcessing, err)
	}
	return &RecordStore{dir: dir, schema: schema, logger: logger}, nil
}

// NextID returns max(existing candidate ids)+1, or 1 for an empty directory.
// Files that do not match the candidate<N>.json pattern are ignored, so gaps
// in the numbering are preserved rather than filled.
func (s *RecordStore) NextID() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("%w: reading records directory: %v", common.ErrProcessing, err)
	}
	maxID := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := reCandidateFile.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1, nil
}

// Write validates the record against the schema and persists it as
// candidate<id>.json. Non-ASCII characters are written literally, not as
// \u escapes, and the document is indented with four spaces.
func (s *RecordStore) Write(rec fields.Record) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(rec); err != nil {
		return "", fmt.Errorf("%w: encoding record: %v", common.ErrProcessing, err)
	}

	var doc interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return "", fmt.Errorf("%w: re-reading encoded record: %v", common.ErrProcessing, err)
	}
	if err := s.schema.Validate(doc); err != nil {
		return "", fmt.Errorf("%w: record %d failed schema validation: %v", common.ErrValidation, rec.ID, err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("candidate%d.json", rec.ID))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("%w: writing record file: %v", common.ErrProcessing, err)
	}
	s.logger.Info("records.written", "path", path, "id", rec.ID)
	return path, nil
}

// List loads every candidate record in the directory, ordered by id.
func (s *RecordStore) List() ([]fields.Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading records directory: %v", common.ErrProcessing, err)
	}
	var recs []fields.Record
	for _, e := range entries {
		if e.IsDir() || reCandidateFile.FindStringSubmatch(e.Name()) == nil {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: reading record file: %v", common.ErrProcessing, err)
		}
		var rec fields.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%w: decoding record file %s: %v", common.ErrDecode, e.Name(), err)
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })
	return recs, nil
}
