package domain

import (
	"sort"

	"github.com/google/uuid"
)

// StatusTotals is one cell of the billing summary breakdown.
type StatusTotals struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// BillingSummary is recomputed from the full ledger on every request; no
// cached aggregate exists to drift out of sync.
type BillingSummary struct {
	ProjectName        string                         `json:"projectName"`
	TotalEntries       int                            `json:"totalEntries"`
	TotalBillingAmount float64                        `json:"totalBillingAmount"`
	Breakdown          map[BillingStatus]StatusTotals `json:"breakdown"`
	BillingHistory     []BillingEntry                 `json:"billingHistory"`
}

// SummarizeBilling folds the ledger into totals and a per-status breakdown.
// Entries with an unset status count as pending. All three statuses are
// always present in the breakdown, zeroed when unused.
func SummarizeBilling(projectName string, entries []BillingEntry) BillingSummary {
	breakdown := map[BillingStatus]StatusTotals{
		BillingCredited: {},
		BillingDebited:  {},
		BillingPending:  {},
	}

	var total float64
	for _, e := range entries {
		status := e.Status
		if status == "" {
			status = BillingPending
		}
		cell := breakdown[status]
		cell.Count++
		cell.Amount += e.BillingAmount
		breakdown[status] = cell
		total += e.BillingAmount
	}

	history := make([]BillingEntry, len(entries))
	copy(history, entries)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})

	return BillingSummary{
		ProjectName:        projectName,
		TotalEntries:       len(entries),
		TotalBillingAmount: total,
		Breakdown:          breakdown,
		BillingHistory:     history,
	}
}

// PatchEntry applies a sparse update to the entry with the given id.
func PatchEntry(entries []BillingEntry, id uuid.UUID, patch BillingPatch) error {
	for i := range entries {
		e := &entries[i]
		if e.ID != id {
			continue
		}
		if patch.Date != nil {
			e.Date = *patch.Date
		}
		if patch.BillingAmount != nil {
			e.BillingAmount = *patch.BillingAmount
		}
		if patch.Recipient != nil {
			e.Recipient = *patch.Recipient
		}
		if patch.Status != nil {
			e.Status = *patch.Status
		}
		if patch.AdditionalNotes != nil {
			e.AdditionalNotes = *patch.AdditionalNotes
		}
		return nil
	}
	return ErrBillingEntryNotFound
}
