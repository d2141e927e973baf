package constants

// JobStatus is the canonical status for rows in the extraction journal.
type JobStatus string

// Stable values (store these exact strings in the journal).
const (
	JobStatusQueued  JobStatus = "QUEUED"   // discovered, not yet dispatched
	JobStatusRunning JobStatus = "RUNNING"  // in progress
	JobStatusTextOK  JobStatus = "TEXT_OK"  // stage 1 completed (text recovered)
	JobStatusParseOK JobStatus = "PARSE_OK" // stage 2 completed (record assembled)
	JobStatusFailed  JobStatus = "FAILED"   // terminal failure
)
