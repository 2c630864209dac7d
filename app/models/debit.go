package models

import "time"

// DebitLog is the singleton marker recording when the last batch debit cycle
// ran. Its date is a BS date string and is written only after every
// per-student update in a cycle has been attempted.
type DebitLog struct {
	LastDebit string `json:"lastDebit"`
}

// DebitRun is the audit record of one batch debit cycle.
type DebitRun struct {
	ID             string    `json:"id"`
	RunDate        string    `json:"run_date"`
	ExamApplied    bool      `json:"exam_applied"`
	StudentsTotal  int       `json:"students_total"`
	StudentsFailed int       `json:"students_failed"`
	CreatedAt      time.Time `json:"created_at"`
}

// BackupInfo describes the most recent snapshot of the students collection.
type BackupInfo struct {
	SnapshotID string    `json:"snapshot_id"`
	TakenAt    time.Time `json:"taken_at"`
	Students   int       `json:"students"`
}
