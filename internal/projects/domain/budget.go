package domain

import "github.com/google/uuid"

// AddItem appends an item and moves the running total by its amount. The
// append and the total bump always travel together so the invariant
// totalAmount == sum(items.amount) survives every item-level mutation.
func (b *Budget) AddItem(item BudgetItem) {
	b.WorkDetails.Items = append(b.WorkDetails.Items, item)
	b.WorkDetails.TotalAmount += item.Amount
}

// PatchItem applies a sparse update to the item with the given id and
// adjusts the total by the amount delta when the amount changed.
func (b *Budget) PatchItem(id uuid.UUID, patch BudgetItemPatch) error {
	for i := range b.WorkDetails.Items {
		item := &b.WorkDetails.Items[i]
		if item.ID != id {
			continue
		}

		if patch.CumulativeWork != nil {
			item.CumulativeWork = *patch.CumulativeWork
		}
		if patch.CumulativePercentage != nil {
			item.CumulativePercentage = *patch.CumulativePercentage
		}
		if patch.Amount != nil {
			b.WorkDetails.TotalAmount += *patch.Amount - item.Amount
			item.Amount = *patch.Amount
		}
		return nil
	}
	return ErrBudgetItemNotFound
}

// RemoveItem pulls the item with the given id and subtracts its amount
// from the total. A missing id is a no-op: the amount subtracted is zero.
func (b *Budget) RemoveItem(id uuid.UUID) {
	for i := range b.WorkDetails.Items {
		if b.WorkDetails.Items[i].ID != id {
			continue
		}
		b.WorkDetails.TotalAmount -= b.WorkDetails.Items[i].Amount
		b.WorkDetails.Items = append(b.WorkDetails.Items[:i], b.WorkDetails.Items[i+1:]...)
		return
	}
}

// Apply overwrites the fields present in the patch, leaving the rest
// untouched. Items replaces wholesale; no total recomputation happens here.
func (b *Budget) Apply(patch BudgetPatch) {
	if patch.AreaInSqFeet != nil {
		b.AreaInSqFeet = *patch.AreaInSqFeet
	}
	if patch.TotalAmount != nil {
		b.WorkDetails.TotalAmount = *patch.TotalAmount
	}
	if patch.Items != nil {
		b.WorkDetails.Items = *patch.Items
	}
}
