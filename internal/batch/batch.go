// Package batch runs text extraction over a folder of resumes with a fixed
// worker pool. Failures are isolated per file: one bad document never stops
// the run.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hrkit/resume-pipeline/constants"
	"github.com/hrkit/resume-pipeline/internal/common"
	"github.com/hrkit/resume-pipeline/internal/extract"
)

const defaultWorkers = 8

// FileExtractor is the per-file extraction seam the orchestrator drives.
type FileExtractor interface {
	Extract(ctx context.Context, path string) extract.Outcome
}

// Stats aggregates one batch run.
type Stats struct {
	Discovered int
	Succeeded  int
	Failed     int
	Elapsed    time.Duration
}

// Orchestrator fans a folder of supported files out to a worker pool.
type Orchestrator struct {
	extractor   FileExtractor
	workers     int
	taskTimeout time.Duration
	logger      *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithTaskTimeout bounds each file's extraction. Zero means no limit.
func WithTaskTimeout(d time.Duration) Option {
	return func(o *Orchestrator) { o.taskTimeout = d }
}

func New(extractor FileExtractor, logger *slog.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Orchestrator{extractor: extractor, workers: defaultWorkers, logger: logger}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ProcessFolder extracts every supported file directly inside dir (no
// recursion) and returns the outcomes in completion order. An empty or
// unsupported-only folder yields a warning and a nil slice, not an error.
func (o *Orchestrator) ProcessFolder(ctx context.Context, dir string) ([]extract.Outcome, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: stat folder: %v", common.ErrNotFound, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", common.ErrInvalidInput, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read folder: %v", common.ErrProcessing, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !constants.IsSupportedExt(filepath.Ext(e.Name())) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	if len(paths) == 0 {
		o.logger.Warn("batch.empty", "dir", dir)
		return nil, nil
	}

	o.logger.Info("batch.started", "dir", dir, "files", len(paths), "workers", o.workers)
	start := time.Now()

	jobs := make(chan string)
	results := make(chan extract.Outcome)

	var wg sync.WaitGroup
	for i := 0; i < o.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- o.runOne(ctx, path)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, p := range paths {
			select {
			case jobs <- p:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	outcomes := make([]extract.Outcome, 0, len(paths))
	for out := range results {
		outcomes = append(outcomes, out)
	}

	stats := statsOf(outcomes, time.Since(start))
	o.logger.Info("batch.finished",
		"discovered", stats.Discovered,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"elapsed", stats.Elapsed.String())
	return outcomes, ctx.Err()
}

// runOne shields the pool from a panicking extractor and applies the
// optional per-file timeout.
func (o *Orchestrator) runOne(ctx context.Context, path string) (out extract.Outcome) {
	name := filepath.Base(path)
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("batch.task_panic", "file", name, "panic", r)
			out = extract.Outcome{
				Filename: name,
				Err:      fmt.Errorf("%w: task panic: %v", common.ErrProcessing, r),
			}
		}
	}()

	if o.taskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.taskTimeout)
		defer cancel()
	}
	return o.extractor.Extract(ctx, path)
}

func statsOf(outcomes []extract.Outcome, elapsed time.Duration) Stats {
	s := Stats{Discovered: len(outcomes), Elapsed: elapsed}
	for _, out := range outcomes {
		if out.OK() {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}
