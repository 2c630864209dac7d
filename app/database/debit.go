package database

import (
	"database/sql"

	"github.com/Rage-Op/CKA-Backend/app/models"
)

// GetDebitLog returns the singleton last-debit marker. The row is seeded by
// the migrations, so before the first run lastDebit is the empty string.
func GetDebitLog(db *sql.DB) (*models.DebitLog, error) {
	l := &models.DebitLog{}
	err := db.QueryRow("SELECT last_debit FROM debit_log").Scan(&l.LastDebit)
	if err == sql.ErrNoRows {
		return l, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// UpdateDebitLog records the date of the most recent batch debit run.
func UpdateDebitLog(db *sql.DB, lastDebit string) error {
	query := `
		INSERT INTO debit_log (singleton, last_debit) VALUES (true, $1)
		ON CONFLICT (singleton) DO UPDATE SET last_debit = $1, updated_at = NOW()`
	_, err := db.Exec(query, lastDebit)
	return err
}

// InsertDebitRun appends one row to the batch run audit trail.
func InsertDebitRun(db *sql.DB, run *models.DebitRun) error {
	query := `
		INSERT INTO debit_runs (id, run_date, exam_applied, students_total, students_failed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`
	return db.QueryRow(query,
		run.ID, run.RunDate, run.ExamApplied, run.StudentsTotal, run.StudentsFailed,
	).Scan(&run.CreatedAt)
}

// GetDebitRuns returns the most recent batch runs, newest first.
func GetDebitRuns(db *sql.DB, limit int) ([]*models.DebitRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT id, run_date, exam_applied, students_total, students_failed, created_at
		FROM debit_runs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*models.DebitRun
	for rows.Next() {
		run := &models.DebitRun{}
		if err := rows.Scan(&run.ID, &run.RunDate, &run.ExamApplied,
			&run.StudentsTotal, &run.StudentsFailed, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
