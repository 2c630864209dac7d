package services

import (
	"database/sql"
	"errors"
	"log"
	"sort"
	"sync"

	"github.com/Rage-Op/CKA-Backend/app/database"
	"github.com/Rage-Op/CKA-Backend/app/models"
	"github.com/google/uuid"
)

// Number of per-student updates in flight at once during a batch run.
const debitWorkers = 8

// DebitUpdate is one student's recomputed ledger, ready to be written. The
// version pins the write to the state the computation was based on.
type DebitUpdate struct {
	StudentID   int
	DebitAmount models.DebitEntries
	Fees        models.FeeSummary
	Version     int
}

// FailedStudent identifies one student whose update did not commit.
type FailedStudent struct {
	StudentID int    `json:"studentId"`
	Reason    string `json:"reason"`
}

// DebitResult is the outcome of one batch debit cycle. Failed is always the
// complete list; the log date must not be read as a success signal unless
// Failed is empty and LogWritten is true.
type DebitResult struct {
	RunID         string          `json:"run_id"`
	Date          string          `json:"date"`
	ExamApplied   bool            `json:"exam_applied"`
	StudentsTotal int             `json:"students_total"`
	Applied       int             `json:"applied"`
	Failed        []FailedStudent `json:"failed"`
	LogWritten    bool            `json:"log_written"`
}

// DebitStore is the persistence surface the batch engine needs.
type DebitStore interface {
	GetSettings() (*models.Settings, error)
	GetStudents() ([]*models.Student, error)
	GetStudent(studentID int) (*models.Student, error)
	ApplyLedgerUpdate(u DebitUpdate) error
	WriteDebitLog(date string) error
	RecordRun(run *models.DebitRun) error
}

type sqlDebitStore struct {
	db *sql.DB
}

// NewDebitStore wraps a database handle in the engine's store interface.
func NewDebitStore(db *sql.DB) DebitStore {
	return &sqlDebitStore{db: db}
}

func (s *sqlDebitStore) GetSettings() (*models.Settings, error) {
	return database.GetSettings(s.db)
}

func (s *sqlDebitStore) GetStudents() ([]*models.Student, error) {
	return database.GetStudents(s.db, true)
}

func (s *sqlDebitStore) GetStudent(studentID int) (*models.Student, error) {
	return database.GetStudentByID(s.db, studentID)
}

func (s *sqlDebitStore) ApplyLedgerUpdate(u DebitUpdate) error {
	return database.UpdateStudentLedger(s.db, u.StudentID, u.Version, u.DebitAmount, u.Fees)
}

func (s *sqlDebitStore) WriteDebitLog(date string) error {
	return database.UpdateDebitLog(s.db, date)
}

func (s *sqlDebitStore) RecordRun(run *models.DebitRun) error {
	return database.InsertDebitRun(s.db, run)
}

// ChargeAmount computes one cycle's charge from the student's fee snapshot.
func ChargeAmount(s *models.Student, examApplies bool) int64 {
	amount := s.MonthlyFees
	if s.Transport {
		amount += s.TransportFees
	}
	if s.Diet {
		amount += s.DietFees
	}
	if examApplies {
		amount += s.ExamFees
	}
	return amount
}

// ChargeRemark lists the billed services in fixed order.
func ChargeRemark(s *models.Student, examApplies bool) string {
	remark := "Monthly Fees"
	if s.Transport {
		remark += ", Transport"
	}
	if s.Diet {
		remark += ", Diet"
	}
	if examApplies {
		remark += ", Exam"
	}
	return remark
}

// BuildDebitUpdate appends the cycle's entry to a copy of the student's debit
// ledger and resums the total over the whole array. Totals are never
// maintained incrementally.
func BuildDebitUpdate(s *models.Student, date string, examApplies bool) DebitUpdate {
	entry := models.DebitEntry{
		Date:   date,
		Amount: ChargeAmount(s, examApplies),
		Remark: ChargeRemark(s, examApplies),
	}

	debits := make(models.DebitEntries, 0, len(s.DebitAmount)+1)
	debits = append(debits, s.DebitAmount...)
	debits = append(debits, entry)

	return DebitUpdate{
		StudentID:   s.StudentID,
		DebitAmount: debits,
		Fees: models.FeeSummary{
			Debit:  debits.Total(),
			Credit: s.Fees.Credit,
		},
		Version: s.LedgerVersion,
	}
}

// RunDebit applies one fee cycle to every student. Per-student updates are
// independent: a failed update is reported in the result and does not roll
// back its siblings. The debit log and the run audit row are written only
// after every update has been attempted.
func RunDebit(store DebitStore, date string, examApplies bool) (*DebitResult, error) {
	// A missing fee schedule aborts before any write.
	if _, err := store.GetSettings(); err != nil {
		return nil, err
	}

	students, err := store.GetStudents()
	if err != nil {
		return nil, err
	}

	result := &DebitResult{
		RunID:         uuid.NewString(),
		Date:          date,
		ExamApplied:   examApplies,
		StudentsTotal: len(students),
		Failed:        []FailedStudent{},
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	sem := make(chan struct{}, debitWorkers)

	for _, student := range students {
		student := student
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			if err := applyWithRetry(store, student, date, examApplies); err != nil {
				mu.Lock()
				result.Failed = append(result.Failed, FailedStudent{
					StudentID: student.StudentID,
					Reason:    err.Error(),
				})
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	sort.Slice(result.Failed, func(i, j int) bool {
		return result.Failed[i].StudentID < result.Failed[j].StudentID
	})
	result.Applied = result.StudentsTotal - len(result.Failed)

	if err := store.WriteDebitLog(date); err != nil {
		log.Printf("Failed to update debit log: %v", err)
	} else {
		result.LogWritten = true
	}

	run := &models.DebitRun{
		ID:             result.RunID,
		RunDate:        date,
		ExamApplied:    examApplies,
		StudentsTotal:  result.StudentsTotal,
		StudentsFailed: len(result.Failed),
	}
	if err := store.RecordRun(run); err != nil {
		log.Printf("Failed to record debit run %s: %v", run.ID, err)
	}

	return result, nil
}

// applyWithRetry writes one student's recomputed ledger. On a version
// conflict the student is re-read and the update rebuilt once; a second
// conflict is reported as a failure.
func applyWithRetry(store DebitStore, student *models.Student, date string, examApplies bool) error {
	err := store.ApplyLedgerUpdate(BuildDebitUpdate(student, date, examApplies))
	if !errors.Is(err, database.ErrVersionConflict) {
		return err
	}

	fresh, err := store.GetStudent(student.StudentID)
	if err != nil {
		return err
	}
	return store.ApplyLedgerUpdate(BuildDebitUpdate(fresh, date, examApplies))
}
