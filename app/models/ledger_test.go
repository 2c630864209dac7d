package models_test

import (
	"testing"

	"github.com/Rage-Op/CKA-Backend/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerTotals(t *testing.T) {
	debits := models.DebitEntries{
		{Date: "previous year", Amount: 0, Remark: models.OldDueRemark},
		{Date: "2081/01/01", Amount: 1500, Remark: "Monthly Fees"},
		{Date: "2081/02/01", Amount: 2000, Remark: "Monthly Fees, Transport"},
	}
	credits := models.CreditEntries{
		{Date: "starting year", Amount: 0, Bill: models.DiscountBill},
		{Date: "2081/01/20", Amount: 200, Bill: "B-104"},
	}

	assert.Equal(t, int64(3500), debits.Total())
	assert.Equal(t, int64(200), credits.Total())
}

func TestLedgerScanRoundTrip(t *testing.T) {
	debits := models.DebitEntries{{Date: "2081/01/01", Amount: 1500, Remark: "Monthly Fees"}}

	value, err := debits.Value()
	require.NoError(t, err)

	var scanned models.DebitEntries
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, debits, scanned)
}

func TestSeedLedger(t *testing.T) {
	s := &models.Student{}
	s.SeedLedger()

	require.Len(t, s.DebitAmount, 1)
	require.Len(t, s.CreditAmount, 1)
	assert.Equal(t, models.OldDueRemark, s.DebitAmount[0].Remark)
	assert.Equal(t, int64(0), s.DebitAmount[0].Amount)
	assert.Equal(t, models.DiscountBill, s.CreditAmount[0].Bill)
	assert.Equal(t, int64(0), s.Fees.Debit)
	assert.Equal(t, int64(0), s.Fees.Credit)
}

func TestDue(t *testing.T) {
	s := &models.Student{Fees: models.FeeSummary{Debit: 3500, Credit: 1200}}
	assert.Equal(t, int64(2300), s.Due())
}
