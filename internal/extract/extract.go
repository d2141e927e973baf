// Package extract recovers raw text from resume container formats. One
// extractor per format; every failure is captured in the per-file Outcome,
// never propagated as a panic.
package extract

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/hrkit/resume-pipeline/constants"
	"github.com/hrkit/resume-pipeline/internal/common"
	"github.com/hrkit/resume-pipeline/internal/ocr"
)

// Outcome is the per-file extraction result. Filename is always set,
// regardless of success or failure.
type Outcome struct {
	Filename string
	Text     string
	Err      error
}

// OK reports whether the extraction produced persistable text.
func (o Outcome) OK() bool { return o.Err == nil }

// Config holds format-extraction settings.
type Config struct {
	OCRLanguages []string // default rus+eng
	PageSegMode  int      // default 6 (single uniform block)
	ScaleFactor  float64  // default 2.0
}

func (c *Config) defaults() {
	if len(c.OCRLanguages) == 0 {
		c.OCRLanguages = []string{"rus", "eng"}
	}
	if c.PageSegMode == 0 {
		c.PageSegMode = 6
	}
	if c.ScaleFactor == 0 {
		c.ScaleFactor = 2.0
	}
}

// Extractor dispatches extraction by file extension. The OCR engine is
// optional; without one the scanned-image path inside PDFs is skipped.
type Extractor struct {
	ocr    ocr.Engine
	cfg    Config
	logger *slog.Logger
}

func New(engine ocr.Engine, cfg Config, logger *slog.Logger) *Extractor {
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{ocr: engine, cfg: cfg, logger: logger}
}

// Extract recovers the text content of one file. The returned Outcome always
// carries the base filename; failures are reported via Outcome.Err wrapping
// one of the common sentinel errors.
func (e *Extractor) Extract(ctx context.Context, path string) Outcome {
	name := filepath.Base(path)

	var text string
	var err error
	switch constants.MapExtToFormat(filepath.Ext(path)) {
	case constants.PDF:
		text, err = e.extractPDF(ctx, path)
	case constants.DOCX:
		text, err = extractDOCX(path)
	case constants.TXT:
		text, err = extractTXT(path)
	default:
		err = common.ErrUnsupportedFormat
	}

	if err != nil {
		e.logger.Error("extract.failed", "file", name, "error", err)
		return Outcome{Filename: name, Err: err}
	}
	e.logger.Info("extract.ok", "file", name, "bytes", len(text))
	return Outcome{Filename: name, Text: text}
}
