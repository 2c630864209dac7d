package models

import "time"

const (
	// Seed entries created at enrollment. Index 0 of each ledger side is
	// reserved for them and may be corrected later through a record edit.
	OldDueRemark = "OLD DUE!"
	DiscountBill = "DISCOUNT!"
	OldDueDate   = "previous year"
	DiscountDate = "starting year"

	// PhotoBaseURL prefixes student photos; the assigned studentId plus
	// ".jpg" completes the URL.
	PhotoBaseURL = "https://raw.githubusercontent.com/Rage-Op/imageResource/main/"
)

// FeeSummary holds the running totals of a student's ledger. Both fields must
// equal the sum of the corresponding ledger array at all times.
type FeeSummary struct {
	Debit  int64 `json:"debit"`
	Credit int64 `json:"credit"`
}

// Student represents an enrolled student with identity fields, a snapshot of
// the fee schedule taken at enrollment time and the append-only ledger.
type Student struct {
	StudentID  int    `json:"studentId"`
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	Class      string `json:"class"`
	DOB        string `json:"DOB"`
	AdmitDate  string `json:"admitDate"`
	FatherName string `json:"fatherName"`
	MotherName string `json:"motherName"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`

	Transport bool `json:"transport"`
	Diet      bool `json:"diet"`

	// Fee snapshot copied from Settings at enrollment, not live references.
	MonthlyFees   int64 `json:"monthlyFees"`
	TransportFees int64 `json:"transportFees"`
	DietFees      int64 `json:"dietFees"`
	ExamFees      int64 `json:"examFees"`

	DebitAmount  DebitEntries  `json:"debitAmount"`
	CreditAmount CreditEntries `json:"creditAmount"`
	Fees         FeeSummary    `json:"fees"`

	Photo string `json:"photo"`

	LedgerVersion int       `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Due returns the amount the student currently owes. Derived, never stored.
func (s *Student) Due() int64 {
	return s.Fees.Debit - s.Fees.Credit
}

// SeedLedger initializes the ledger arrays and totals for a new enrollment.
func (s *Student) SeedLedger() {
	s.DebitAmount = DebitEntries{{Date: OldDueDate, Amount: 0, Remark: OldDueRemark}}
	s.CreditAmount = CreditEntries{{Date: DiscountDate, Amount: 0, Bill: DiscountBill}}
	s.Fees = FeeSummary{Debit: 0, Credit: 0}
}
