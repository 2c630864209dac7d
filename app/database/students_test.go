package database_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/Rage-Op/CKA-Backend/app/database"
)

func TestUpdateStudent_OldDueRewritesSeedAndResums(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// The seed rewrite, the total resum over the rewritten array and the
	// version bump are one statement, so fees.debit cannot drift from
	// sum(debitAmount) even if a debit run lands concurrently.
	mock.ExpectExec(`(?s)UPDATE students SET debit_amount = jsonb_set\(debit_amount, '\{0,amount\}', to_jsonb\(\$1::bigint\)\).*fees_debit = .*SUM.*jsonb_set.*\$1.*ledger_version = ledger_version \+ 1.*updated_at = NOW\(\) WHERE student_id = \$2`).
		WithArgs(int64(4000), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	oldDue := int64(4000)
	require.NoError(t, database.UpdateStudent(db, 7, database.StudentUpdate{OldDue: &oldDue}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStudent_UnknownStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	name := "Nirmala Shrestha"
	mock.ExpectExec(`UPDATE students SET name = \$1, updated_at = NOW\(\) WHERE student_id = \$2`).
		WithArgs(name, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = database.UpdateStudent(db, 99, database.StudentUpdate{Name: &name})
	require.ErrorIs(t, err, database.ErrStudentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStudent_EmptyUpdateIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, database.UpdateStudent(db, 7, database.StudentUpdate{}))
	require.NoError(t, mock.ExpectationsWereMet())
}
