package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hrkit/resume-pipeline/internal/batch"
	"github.com/hrkit/resume-pipeline/internal/common"
	"github.com/hrkit/resume-pipeline/internal/extract"
	"github.com/hrkit/resume-pipeline/internal/fields"
	"github.com/hrkit/resume-pipeline/internal/ocr"
	"github.com/hrkit/resume-pipeline/internal/pipeline"
	"github.com/hrkit/resume-pipeline/internal/store"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir     = flag.String("dir", "", "directory of resume files to process (required)")
		texts   = flag.String("texts", "", "directory for extracted text files (default: TEXTS_DIR env or extracted_texts)")
		records = flag.String("records", "", "directory for candidate record files (default: RECORDS_DIR env or data/candidates)")
		journal = flag.String("journal", "", "path to the SQLite job journal (default: JOURNAL_PATH env; empty disables)")
		workers = flag.Int("workers", 0, "worker pool size (default: BATCH_WORKERS env or 8)")
		noOCR   = flag.Bool("no-ocr", false, "skip OCR of images embedded in PDFs")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *texts != "" {
		cfg.Store.TextsDir = *texts
	}
	if *records != "" {
		cfg.Store.RecordsDir = *records
	}
	if *journal != "" {
		cfg.Store.JournalPath = *journal
	}
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		printError("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var engine ocr.Engine
	if !*noOCR {
		engine = ocr.NewTesseract(ocr.Config{TessdataDir: cfg.OCR.TessdataDir})
	}
	extractor := extract.New(engine, extract.Config{
		OCRLanguages: cfg.OCR.Languages,
		PageSegMode:  cfg.OCR.PageSegMode,
		ScaleFactor:  cfg.OCR.ScaleFactor,
	}, logger)

	orchestrator := batch.New(extractor, logger,
		batch.WithWorkers(cfg.Batch.Workers),
		batch.WithTaskTimeout(cfg.Batch.TaskTimeout))

	textStore, err := store.NewTextStore(cfg.Store.TextsDir, logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	recordStore, err := store.NewRecordStore(cfg.Store.RecordsDir, logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	var jrnl *store.Journal
	if cfg.Store.JournalPath != "" {
		jrnl, err = store.OpenJournal(cfg.Store.JournalPath, logger)
		if err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = jrnl.Close() }()
	}

	processor := pipeline.NewProcessor(orchestrator,
		fields.NewExtractor(nil, nil, logger),
		textStore, recordStore, jrnl, logger)

	summary, err := processor.Run(ctx, *dir)
	if err != nil {
		printError("Error: pipeline run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Processed %d files: %d extracted, %d failed, %d records written (%s)\n",
		summary.Extraction.Discovered,
		summary.Extraction.Succeeded,
		summary.Extraction.Failed,
		summary.RecordsWritten,
		summary.Elapsed)
}
