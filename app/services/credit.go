package services

import (
	"database/sql"
	"errors"

	"github.com/Rage-Op/CKA-Backend/app/database"
	"github.com/Rage-Op/CKA-Backend/app/models"
)

// AddCredit appends a manual payment or discount to a student's ledger and
// resums the credit total. On a version conflict the student is re-read and
// the append retried once. Returns the student as written.
func AddCredit(db *sql.DB, studentID int, amount int64, bill, date string) (*models.Student, error) {
	for attempt := 0; attempt < 2; attempt++ {
		student, err := database.GetStudentByID(db, studentID)
		if err != nil {
			return nil, err
		}

		credits := make(models.CreditEntries, 0, len(student.CreditAmount)+1)
		credits = append(credits, student.CreditAmount...)
		credits = append(credits, models.CreditEntry{Date: date, Amount: amount, Bill: bill})

		err = database.UpdateStudentCredits(db, studentID, student.LedgerVersion, credits, credits.Total())
		if errors.Is(err, database.ErrVersionConflict) && attempt == 0 {
			continue
		}
		if err != nil {
			return nil, err
		}

		student.CreditAmount = credits
		student.Fees.Credit = credits.Total()
		student.LedgerVersion++
		return student, nil
	}
	return nil, database.ErrVersionConflict
}
