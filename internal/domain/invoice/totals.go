// Package invoice holds the document's pure domain services: the totals
// calculation and validation. No I/O, no side effects.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/socialxspark/invoice-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals is the derived tuple. It is recomputed from its inputs every time
// it is needed and is never persisted.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Commission decimal.Decimal `json:"commission"`
	TaxAmount  decimal.Decimal `json:"taxAmount"`
	Total      decimal.Decimal `json:"total"`
}

// ComputeTotals derives subtotal, commission, tax and grand total.
//
//	subtotal   = Σ quantity × rate
//	commission = subtotal × commissionRate/100   (0 when disabled)
//	taxAmount  = (subtotal + commission) × taxRatePercent/100
//	total      = subtotal + commission + taxAmount
//
// The ordering is a policy choice: commission is computed before tax and tax
// applies to the commission-inclusive subtotal. No rounding happens here;
// display formatting is a presentation concern. Negative quantities and
// rates are accepted arithmetically.
func ComputeTotals(items []entity.LineItem, agency entity.Agency, taxRatePercent decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Quantity.Mul(it.Rate))
	}

	commission := decimal.Zero
	if agency.Enabled {
		commission = subtotal.Mul(agency.CommissionRatePercent).Div(hundred)
	}

	taxAmount := subtotal.Add(commission).Mul(taxRatePercent).Div(hundred)

	return Totals{
		Subtotal:   subtotal,
		Commission: commission,
		TaxAmount:  taxAmount,
		Total:      subtotal.Add(commission).Add(taxAmount),
	}
}

// ComputeInvoiceTotals derives the totals straight from an invoice record.
func ComputeInvoiceTotals(inv *entity.Invoice) Totals {
	return ComputeTotals(inv.Items, inv.Agency, inv.TaxRatePercent)
}
