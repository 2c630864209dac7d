package services

import (
	"database/sql"
	"time"

	"github.com/Rage-Op/CKA-Backend/app/database"
	"github.com/Rage-Op/CKA-Backend/app/models"
	"github.com/google/uuid"
)

// BackupStudents replaces the backup collection with a fresh snapshot of all
// students. The previous snapshot is gone once this returns; a deleted
// student cannot be restored from a snapshot taken after the deletion.
func BackupStudents(db *sql.DB) (*models.BackupInfo, error) {
	students, err := database.GetStudents(db, true)
	if err != nil {
		return nil, err
	}

	info := &models.BackupInfo{
		SnapshotID: uuid.NewString(),
		TakenAt:    time.Now(),
		Students:   len(students),
	}

	if err := database.ReplaceBackup(db, info.SnapshotID, info.TakenAt, students); err != nil {
		return nil, err
	}
	return info, nil
}
