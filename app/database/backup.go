package database

import (
	"database/sql"
	"time"

	"github.com/Rage-Op/CKA-Backend/app/models"
)

// ReplaceBackup atomically replaces the backup collection with a snapshot of
// the given students. Delete and insert happen in one transaction so a failed
// snapshot never leaves the collection half-written.
func ReplaceBackup(db *sql.DB, snapshotID string, takenAt time.Time, students []*models.Student) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM backup_students"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO backup_students (
			snapshot_id, taken_at, student_id, name, gender, class, dob, admit_date,
			father_name, mother_name, contact, address, transport, diet,
			monthly_fees, transport_fees, diet_fees, exam_fees,
			debit_amount, credit_amount, fees_debit, fees_credit, photo
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range students {
		_, err := stmt.Exec(
			snapshotID, takenAt, s.StudentID, s.Name, s.Gender, s.Class, s.DOB, s.AdmitDate,
			s.FatherName, s.MotherName, s.Contact, s.Address, s.Transport, s.Diet,
			s.MonthlyFees, s.TransportFees, s.DietFees, s.ExamFees,
			s.DebitAmount, s.CreditAmount, s.Fees.Debit, s.Fees.Credit, s.Photo,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetLatestBackupInfo describes the current snapshot, or nil when no backup
// has been taken yet.
func GetLatestBackupInfo(db *sql.DB) (*models.BackupInfo, error) {
	info := &models.BackupInfo{}
	err := db.QueryRow(`
		SELECT snapshot_id, taken_at, COUNT(*)
		FROM backup_students GROUP BY snapshot_id, taken_at
		ORDER BY taken_at DESC LIMIT 1`,
	).Scan(&info.SnapshotID, &info.TakenAt, &info.Students)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}
