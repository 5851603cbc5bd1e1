package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeBilling(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	entries := []BillingEntry{
		{ID: uuid.New(), Date: day(1), BillingAmount: 500, Recipient: "Acme Cement", Status: BillingCredited},
		{ID: uuid.New(), Date: day(5), BillingAmount: 200, Recipient: "Site crew", Status: BillingPending},
	}

	s := SummarizeBilling("Riverside Villa", entries)

	assert.Equal(t, "Riverside Villa", s.ProjectName)
	assert.Equal(t, 2, s.TotalEntries)
	assert.Equal(t, 700.0, s.TotalBillingAmount)

	assert.Equal(t, StatusTotals{Count: 1, Amount: 500}, s.Breakdown[BillingCredited])
	assert.Equal(t, StatusTotals{Count: 1, Amount: 200}, s.Breakdown[BillingPending])
	assert.Equal(t, StatusTotals{}, s.Breakdown[BillingDebited])

	require.Len(t, s.BillingHistory, 2)
	assert.Equal(t, day(5), s.BillingHistory[0].Date)
	assert.Equal(t, day(1), s.BillingHistory[1].Date)
}

func TestSummarizeBilling_EmptyLedger(t *testing.T) {
	s := SummarizeBilling("Fresh Start", nil)

	assert.Equal(t, 0, s.TotalEntries)
	assert.Equal(t, 0.0, s.TotalBillingAmount)
	assert.Len(t, s.Breakdown, 3)
	assert.Equal(t, StatusTotals{}, s.Breakdown[BillingCredited])
	assert.Equal(t, StatusTotals{}, s.Breakdown[BillingDebited])
	assert.Equal(t, StatusTotals{}, s.Breakdown[BillingPending])
	assert.Empty(t, s.BillingHistory)
}

func TestSummarizeBilling_UnsetStatusCountsAsPending(t *testing.T) {
	entries := []BillingEntry{
		{ID: uuid.New(), BillingAmount: 120},
	}

	s := SummarizeBilling("Legacy Data", entries)

	assert.Equal(t, StatusTotals{Count: 1, Amount: 120}, s.Breakdown[BillingPending])
}

func TestPatchEntry(t *testing.T) {
	id := uuid.New()
	entries := []BillingEntry{
		{ID: id, BillingAmount: 300, Recipient: "Acme Cement", Status: BillingPending, AdditionalNotes: "deposit"},
	}

	amount := 350.0
	status := BillingCredited
	require.NoError(t, PatchEntry(entries, id, BillingPatch{BillingAmount: &amount, Status: &status}))

	assert.Equal(t, 350.0, entries[0].BillingAmount)
	assert.Equal(t, BillingCredited, entries[0].Status)
	assert.Equal(t, "Acme Cement", entries[0].Recipient)
	assert.Equal(t, "deposit", entries[0].AdditionalNotes)
}

func TestPatchEntry_UnknownID(t *testing.T) {
	entries := []BillingEntry{{ID: uuid.New()}}

	err := PatchEntry(entries, uuid.New(), BillingPatch{})
	assert.ErrorIs(t, err, ErrBillingEntryNotFound)
}
