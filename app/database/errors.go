package database

import "errors"

var (
	// ErrSettingsMissing means the singleton fee schedule has not been
	// initialized. Any operation that depends on a fee schedule aborts
	// before writing anything.
	ErrSettingsMissing = errors.New("settings record not found")

	// ErrStudentNotFound means no student exists with the given studentId.
	ErrStudentNotFound = errors.New("student not found")

	// ErrVersionConflict means a conditional ledger update lost a race with
	// a concurrent writer. Callers re-read and retry once, then give up.
	ErrVersionConflict = errors.New("ledger version conflict")
)
