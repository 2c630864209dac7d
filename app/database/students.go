package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Rage-Op/CKA-Backend/app/models"
)

const studentColumns = `student_id, name, gender, class, dob, admit_date,
	father_name, mother_name, contact, address, transport, diet,
	monthly_fees, transport_fees, diet_fees, exam_fees,
	debit_amount, credit_amount, fees_debit, fees_credit, photo,
	ledger_version, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.StudentID, &s.Name, &s.Gender, &s.Class, &s.DOB, &s.AdmitDate,
		&s.FatherName, &s.MotherName, &s.Contact, &s.Address, &s.Transport, &s.Diet,
		&s.MonthlyFees, &s.TransportFees, &s.DietFees, &s.ExamFees,
		&s.DebitAmount, &s.CreditAmount, &s.Fees.Debit, &s.Fees.Credit, &s.Photo,
		&s.LedgerVersion, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetStudents returns all students ordered by studentId.
func GetStudents(db *sql.DB, ascending bool) ([]*models.Student, error) {
	order := "DESC"
	if ascending {
		order = "ASC"
	}
	rows, err := db.Query(fmt.Sprintf(
		"SELECT %s FROM students ORDER BY student_id %s", studentColumns, order))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID returns a single student by studentId.
func GetStudentByID(db *sql.DB, studentID int) (*models.Student, error) {
	row := db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM students WHERE student_id = $1", studentColumns), studentID)
	s, err := scanStudent(row)
	if err == sql.ErrNoRows {
		return nil, ErrStudentNotFound
	}
	return s, err
}

// CreateStudent inserts a new student. The studentId is assigned inside the
// statement as max existing + 1 so the read and the write are one atomic
// operation; the assigned id is written back into the struct.
func CreateStudent(db *sql.DB, s *models.Student) error {
	// The photo URL embeds the assigned id, so it is derived from the same
	// aggregate inside the statement.
	query := `
		INSERT INTO students (
			student_id, name, gender, class, dob, admit_date,
			father_name, mother_name, contact, address, transport, diet,
			monthly_fees, transport_fees, diet_fees, exam_fees,
			debit_amount, credit_amount, fees_debit, fees_credit, photo
		)
		SELECT COALESCE(MAX(student_id), 0) + 1,
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19,
			$20 || (COALESCE(MAX(student_id), 0) + 1)::text || '.jpg'
		FROM students
		RETURNING student_id, photo, created_at, updated_at`

	return db.QueryRow(query,
		s.Name, s.Gender, s.Class, s.DOB, s.AdmitDate,
		s.FatherName, s.MotherName, s.Contact, s.Address, s.Transport, s.Diet,
		s.MonthlyFees, s.TransportFees, s.DietFees, s.ExamFees,
		s.DebitAmount, s.CreditAmount, s.Fees.Debit, s.Fees.Credit,
		models.PhotoBaseURL,
	).Scan(&s.StudentID, &s.Photo, &s.CreatedAt, &s.UpdatedAt)
}

// StudentUpdate carries the identity fields a record edit may change. Nil
// fields are left untouched; ledger arrays and fee totals are not editable
// through this path.
type StudentUpdate struct {
	Name       *string `json:"name"`
	Gender     *string `json:"gender"`
	Class      *string `json:"class"`
	DOB        *string `json:"DOB"`
	AdmitDate  *string `json:"admitDate"`
	FatherName *string `json:"fatherName"`
	MotherName *string `json:"motherName"`
	Contact    *string `json:"contact"`
	Address    *string `json:"address"`
	Transport  *bool   `json:"transport"`
	Diet       *bool   `json:"diet"`

	MonthlyFees   *int64 `json:"monthlyFees"`
	TransportFees *int64 `json:"transportFees"`
	DietFees      *int64 `json:"dietFees"`
	ExamFees      *int64 `json:"examFees"`

	// OldDue corrects the seed entry at debitAmount[0]; the debit total is
	// resummed in the same statement.
	OldDue *int64 `json:"oldDue"`
}

// UpdateStudent applies a partial identity update to one student.
func UpdateStudent(db *sql.DB, studentID int, u StudentUpdate) error {
	var sets []string
	var args []interface{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if u.Name != nil {
		addSet("name", *u.Name)
	}
	if u.Gender != nil {
		addSet("gender", *u.Gender)
	}
	if u.Class != nil {
		addSet("class", *u.Class)
	}
	if u.DOB != nil {
		addSet("dob", *u.DOB)
	}
	if u.AdmitDate != nil {
		addSet("admit_date", *u.AdmitDate)
	}
	if u.FatherName != nil {
		addSet("father_name", *u.FatherName)
	}
	if u.MotherName != nil {
		addSet("mother_name", *u.MotherName)
	}
	if u.Contact != nil {
		addSet("contact", *u.Contact)
	}
	if u.Address != nil {
		addSet("address", *u.Address)
	}
	if u.Transport != nil {
		addSet("transport", *u.Transport)
	}
	if u.Diet != nil {
		addSet("diet", *u.Diet)
	}
	if u.MonthlyFees != nil {
		addSet("monthly_fees", *u.MonthlyFees)
	}
	if u.TransportFees != nil {
		addSet("transport_fees", *u.TransportFees)
	}
	if u.DietFees != nil {
		addSet("diet_fees", *u.DietFees)
	}
	if u.ExamFees != nil {
		addSet("exam_fees", *u.ExamFees)
	}

	if u.OldDue != nil {
		// Rewrite the seed entry and resum the debit total in the same
		// statement so the total can never drift from the array.
		sets = append(sets, fmt.Sprintf(
			`debit_amount = jsonb_set(debit_amount, '{0,amount}', to_jsonb($%d::bigint))`, argIndex))
		sets = append(sets, fmt.Sprintf(
			`fees_debit = (
				SELECT COALESCE(SUM((e->>'amount')::bigint), 0)
				FROM jsonb_array_elements(jsonb_set(debit_amount, '{0,amount}', to_jsonb($%d::bigint))) e
			)`, argIndex))
		args = append(args, *u.OldDue)
		argIndex++
		sets = append(sets, "ledger_version = ledger_version + 1")
	}

	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE students SET %s WHERE student_id = $%d",
		strings.Join(sets, ", "), argIndex)
	args = append(args, studentID)

	result, err := db.Exec(query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrStudentNotFound
	}
	return err
}

// UpdateStudentLedger replaces a student's debit ledger and totals with the
// recomputed values. The write is conditional on the ledger version seen at
// read time; a concurrent writer causes ErrVersionConflict.
func UpdateStudentLedger(db *sql.DB, studentID, version int, debits models.DebitEntries, fees models.FeeSummary) error {
	query := `
		UPDATE students
		SET debit_amount = $1, fees_debit = $2, fees_credit = $3,
			ledger_version = ledger_version + 1, updated_at = NOW()
		WHERE student_id = $4 AND ledger_version = $5`

	result, err := db.Exec(query, debits, fees.Debit, fees.Credit, studentID, version)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Distinguish a missing student from a lost race.
		var exists bool
		if err := db.QueryRow(
			"SELECT EXISTS (SELECT 1 FROM students WHERE student_id = $1)",
			studentID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrStudentNotFound
		}
		return ErrVersionConflict
	}
	return nil
}

// UpdateStudentCredits replaces a student's credit ledger and total, guarded
// by the ledger version the caller read.
func UpdateStudentCredits(db *sql.DB, studentID, version int, credits models.CreditEntries, feesCredit int64) error {
	query := `
		UPDATE students
		SET credit_amount = $1, fees_credit = $2,
			ledger_version = ledger_version + 1, updated_at = NOW()
		WHERE student_id = $3 AND ledger_version = $4`

	result, err := db.Exec(query, credits, feesCredit, studentID, version)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists bool
		if err := db.QueryRow(
			"SELECT EXISTS (SELECT 1 FROM students WHERE student_id = $1)",
			studentID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrStudentNotFound
		}
		return ErrVersionConflict
	}
	return nil
}

// DeleteStudent removes a student. No cascading effects; backups keep their
// own copies until the next snapshot.
func DeleteStudent(db *sql.DB, studentID int) error {
	result, err := db.Exec("DELETE FROM students WHERE student_id = $1", studentID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrStudentNotFound
	}
	return err
}
