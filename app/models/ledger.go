package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DebitEntry is one charge on a student's ledger.
type DebitEntry struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
	Remark string `json:"remark"`
}

// CreditEntry is one payment or discount on a student's ledger.
type CreditEntry struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
	Bill   string `json:"bill"`
}

// DebitEntries is the append-only debit side of a ledger, stored as JSONB.
type DebitEntries []DebitEntry

// CreditEntries is the append-only credit side of a ledger, stored as JSONB.
type CreditEntries []CreditEntry

// Total sums all entry amounts. Totals stored on the student row must always
// be recomputed from the full array, never maintained incrementally.
func (e DebitEntries) Total() int64 {
	var total int64
	for _, entry := range e {
		total += entry.Amount
	}
	return total
}

func (e CreditEntries) Total() int64 {
	var total int64
	for _, entry := range e {
		total += entry.Amount
	}
	return total
}

func (e DebitEntries) Value() (driver.Value, error) {
	if e == nil {
		e = DebitEntries{}
	}
	return json.Marshal(e)
}

func (e *DebitEntries) Scan(src interface{}) error {
	return scanJSON(src, e)
}

func (e CreditEntries) Value() (driver.Value, error) {
	if e == nil {
		e = CreditEntries{}
	}
	return json.Marshal(e)
}

func (e *CreditEntries) Scan(src interface{}) error {
	return scanJSON(src, e)
}

func scanJSON(src, dest interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported ledger column type %T", src)
	}
}
