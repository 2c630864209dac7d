package database_test

import (
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/Rage-Op/CKA-Backend/app/database"
	"github.com/Rage-Op/CKA-Backend/app/models"
)

func backupArgs(snapshotID string, takenAt time.Time, studentID int) []driver.Value {
	args := []driver.Value{snapshotID, takenAt, studentID}
	for len(args) < 23 {
		args = append(args, sqlmock.AnyArg())
	}
	return args
}

func TestReplaceBackup_ReplacesWholeSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	takenAt := time.Date(2024, time.June, 1, 2, 0, 0, 0, time.UTC)
	roster := []*models.Student{
		{StudentID: 1, Name: "Aarav Karki"},
		{StudentID: 2, Name: "Binita Rai"},
	}

	// The previous snapshot is wiped before the current roster is written, so
	// a student deleted since the last backup never survives into the next one.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM backup_students").
		WillReturnResult(sqlmock.NewResult(0, 3))
	prep := mock.ExpectPrepare("INSERT INTO backup_students")
	prep.ExpectExec().
		WithArgs(backupArgs("snap-1", takenAt, 1)...).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().
		WithArgs(backupArgs("snap-1", takenAt, 2)...).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, database.ReplaceBackup(db, "snap-1", takenAt, roster))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceBackup_FailedInsertRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("disk full")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM backup_students").
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep := mock.ExpectPrepare("INSERT INTO backup_students")
	prep.ExpectExec().WillReturnError(boom)
	mock.ExpectRollback()

	err = database.ReplaceBackup(db, "snap-2", time.Now(), []*models.Student{{StudentID: 5}})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
