package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/hrkit/resume-pipeline/constants"
	"github.com/hrkit/resume-pipeline/internal/common"
)

const journalSchema = `
CREATE TABLE IF NOT EXISTS jobs (
	id          TEXT PRIMARY KEY,
	filename    TEXT NOT NULL,
	status      TEXT NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	record_id   INTEGER,
	created_at  TIMESTAMP NOT NULL,
	updated_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs (status);
`

// Journal records one row per processed file in a local SQLite database so a
// batch run can be audited after the fact. A nil *Journal is a valid no-op
// journal, letting callers run without one.
type Journal struct {
	db     *sql.DB
	logger *slog.Logger
}

func OpenJournal(path string, logger *slog.Logger) (*Journal, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening journal database: %v", common.ErrProcessing, err)
	}
	if _, err := db.Exec(journalSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: initializing journal schema: %v", common.ErrProcessing, err)
	}
	return &Journal{db: db, logger: logger}, nil
}

func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.db.Close()
}

// StartJob inserts a QUEUED row for the file and returns its job id.
func (j *Journal) StartJob(ctx context.Context, filename string) (string, error) {
	if j == nil {
		return "", nil
	}
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO jobs (id, filename, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, filename, string(constants.JobStatusQueued), now, now)
	if err != nil {
		return "", fmt.Errorf("%w: inserting job row: %v", common.ErrProcessing, err)
	}
	return id, nil
}

// SetStatus advances the job's status, optionally attaching an error message
// and the allocated record id.
func (j *Journal) SetStatus(ctx context.Context, jobID string, status constants.JobStatus, jobErr error, recordID int) error {
	if j == nil || jobID == "" {
		return nil
	}
	msg := ""
	if jobErr != nil {
		msg = jobErr.Error()
	}
	var rid sql.NullInt64
	if recordID > 0 {
		rid = sql.NullInt64{Int64: int64(recordID), Valid: true}
	}
	_, err := j.db.ExecContext(ctx,
		`UPDATE jobs SET status = ?, error = ?, record_id = ?, updated_at = ? WHERE id = ?`,
		string(status), msg, rid, time.Now().UTC(), jobID)
	if err != nil {
		return fmt.Errorf("%w: updating job row: %v", common.ErrProcessing, err)
	}
	return nil
}

// CountByStatus returns how many journal rows carry each status.
func (j *Journal) CountByStatus(ctx context.Context) (map[constants.JobStatus]int, error) {
	if j == nil {
		return nil, nil
	}
	rows, err := j.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM jobs GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying job counts: %v", common.ErrProcessing, err)
	}
	defer func() { _ = rows.Close() }()
	counts := make(map[constants.JobStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("%w: scanning job counts: %v", common.ErrProcessing, err)
		}
		counts[constants.JobStatus(status)] = n
	}
	return counts, rows.Err()
}
