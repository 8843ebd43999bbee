package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one billable row. ID is a local list-editing identity, not a
// business key; the invoice number identifies the document.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// NewLineItem returns a blank row: empty description, quantity 1, rate 0.
func NewLineItem() LineItem {
	return LineItem{
		ID:       uuid.NewString(),
		Quantity: decimal.NewFromInt(1),
		Rate:     decimal.Zero,
	}
}

// LineItemPatch replaces individual fields of one row. Nil fields are left
// untouched. Numeric ranges are not validated here; the model accepts any
// signed number.
type LineItemPatch struct {
	Description *string
	Quantity    *decimal.Decimal
	Rate        *decimal.Decimal
}

// AddItem appends a blank row with a fresh local identity and returns it.
func (inv *Invoice) AddItem() *LineItem {
	inv.Items = append(inv.Items, NewLineItem())
	return &inv.Items[len(inv.Items)-1]
}

// RemoveItem drops the row with the given local id. Removing the last
// remaining row is refused, keeping the at-least-one-item invariant; the
// refusal is a no-op, not an error. Returns whether a row was removed.
func (inv *Invoice) RemoveItem(localID string) bool {
	if len(inv.Items) <= 1 {
		return false
	}
	for i, it := range inv.Items {
		if it.ID == localID {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateItem applies a patch to the row with the given local id. Returns
// whether a row matched.
func (inv *Invoice) UpdateItem(localID string, patch LineItemPatch) bool {
	for i := range inv.Items {
		if inv.Items[i].ID != localID {
			continue
		}
		if patch.Description != nil {
			inv.Items[i].Description = *patch.Description
		}
		if patch.Quantity != nil {
			inv.Items[i].Quantity = *patch.Quantity
		}
		if patch.Rate != nil {
			inv.Items[i].Rate = *patch.Rate
		}
		return true
	}
	return false
}
