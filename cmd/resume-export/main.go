package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hrkit/resume-pipeline/internal/common"
	"github.com/hrkit/resume-pipeline/internal/export"
	"github.com/hrkit/resume-pipeline/internal/store"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		records = flag.String("records", "", "directory of candidate record files (default: RECORDS_DIR env or data/candidates)")
		out     = flag.String("out", "", "output XLSX file path (default: candidates.xlsx next to the records directory)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *records != "" {
		cfg.Store.RecordsDir = *records
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(cfg.Store.RecordsDir), "candidates.xlsx")
	}

	recordStore, err := store.NewRecordStore(cfg.Store.RecordsDir, logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	svc := export.NewService(recordStore, logger)
	data, err := svc.ExportCandidatesXLSX()
	if err != nil {
		printError("Error: export failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		printError("Error: writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", *out, len(data))
}
