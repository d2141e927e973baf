// Package pipeline wires the two processing stages together: folder
// extraction into text files, then field parsing of those texts into
// candidate records.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hrkit/resume-pipeline/constants"
	"github.com/hrkit/resume-pipeline/internal/batch"
	"github.com/hrkit/resume-pipeline/internal/common"
	"github.com/hrkit/resume-pipeline/internal/fields"
	"github.com/hrkit/resume-pipeline/internal/store"
)

// Summary aggregates a full pipeline run.
type Summary struct {
	Extraction     batch.Stats
	RecordsWritten int
	Elapsed        time.Duration
}

// Processor owns one end-to-end run: extract, persist texts, parse fields,
// persist records. The journal is optional (nil disables it).
type Processor struct {
	orchestrator *batch.Orchestrator
	extractor    *fields.Extractor
	texts        *store.TextStore
	records      *store.RecordStore
	journal      *store.Journal
	logger       *slog.Logger
}

func NewProcessor(orchestrator *batch.Orchestrator, extractor *fields.Extractor, texts *store.TextStore, records *store.RecordStore, journal *store.Journal, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		orchestrator: orchestrator,
		extractor:    extractor,
		texts:        texts,
		records:      records,
		journal:      journal,
		logger:       logger,
	}
}

// Run executes both stages over the given folder. Stage 2 parses whatever
// the texts directory holds after stage 1, so texts from earlier runs are
// picked up too.
func (p *Processor) Run(ctx context.Context, dir string) (Summary, error) {
	start := time.Now()

	jobIDs, stats, err := p.extractStage(ctx, dir)
	if err != nil {
		return Summary{Extraction: stats, Elapsed: time.Since(start)}, err
	}

	written, err := p.parseStage(ctx, jobIDs)
	summary := Summary{Extraction: stats, RecordsWritten: written, Elapsed: time.Since(start)}
	if err != nil {
		return summary, err
	}

	p.logger.Info("pipeline.finished",
		"discovered", stats.Discovered,
		"extracted", stats.Succeeded,
		"failed", stats.Failed,
		"records", written,
		"elapsed", summary.Elapsed.String())
	return summary, nil
}

// extractStage runs the folder orchestrator and persists every successful
// outcome as a text file. It returns journal job ids keyed by text stem.
func (p *Processor) extractStage(ctx context.Context, dir string) (map[string]string, batch.Stats, error) {
	outcomes, err := p.orchestrator.ProcessFolder(ctx, dir)
	if err != nil {
		return nil, batch.Stats{}, err
	}

	jobIDs := make(map[string]string, len(outcomes))
	stats := batch.Stats{Discovered: len(outcomes)}
	for _, out := range outcomes {
		jobID, jerr := p.journal.StartJob(ctx, out.Filename)
		if jerr != nil {
			p.logger.Warn("journal.start_failed", "file", out.Filename, "error", jerr)
		}

		if !out.OK() {
			stats.Failed++
			if jerr := p.journal.SetStatus(ctx, jobID, constants.JobStatusFailed, out.Err, 0); jerr != nil {
				p.logger.Warn("journal.update_failed", "file", out.Filename, "error", jerr)
			}
			continue
		}

		if _, werr := p.texts.Write(out.Filename, out.Text); werr != nil {
			stats.Failed++
			p.logger.Error("pipeline.text_write_failed", "file", out.Filename, "error", werr)
			if jerr := p.journal.SetStatus(ctx, jobID, constants.JobStatusFailed, werr, 0); jerr != nil {
				p.logger.Warn("journal.update_failed", "file", out.Filename, "error", jerr)
			}
			continue
		}

		stats.Succeeded++
		stem := strings.TrimSuffix(out.Filename, filepath.Ext(out.Filename))
		jobIDs[stem] = jobID
		if jerr := p.journal.SetStatus(ctx, jobID, constants.JobStatusTextOK, nil, 0); jerr != nil {
			p.logger.Warn("journal.update_failed", "file", out.Filename, "error", jerr)
		}
	}
	return jobIDs, stats, nil
}

// parseStage assembles a record for every text file, allocating ids
// sequentially from a single scan of the records directory.
func (p *Processor) parseStage(ctx context.Context, jobIDs map[string]string) (int, error) {
	paths, err := p.texts.List()
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		p.logger.Warn("pipeline.no_texts")
		return 0, nil
	}

	id, err := p.records.NextID()
	if err != nil {
		return 0, err
	}

	written := 0
	for _, path := range paths {
		if ctx.Err() != nil {
			return written, fmt.Errorf("%w: %v", common.ErrProcessing, ctx.Err())
		}
		raw, rerr := os.ReadFile(path)
		if rerr != nil {
			p.logger.Error("pipeline.text_read_failed", "path", path, "error", rerr)
			continue
		}

		rec := p.extractor.Assemble(string(raw), id)
		if _, werr := p.records.Write(rec); werr != nil {
			p.logger.Error("pipeline.record_write_failed", "path", path, "error", werr)
			continue
		}

		stem := strings.TrimSuffix(filepath.Base(path), ".txt")
		if jobID, ok := jobIDs[stem]; ok {
			if jerr := p.journal.SetStatus(ctx, jobID, constants.JobStatusParseOK, nil, id); jerr != nil {
				p.logger.Warn("journal.update_failed", "file", stem, "error", jerr)
			}
		}
		id++
		written++
	}
	return written, nil
}
