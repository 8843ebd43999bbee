// Package pdf renders the invoice document with Maroto v2.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sender brand            │  INVOICE + number + date  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  QR (number, date, total, client)                           │
//	│  FROM: sender          │  BILL TO: client                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Description | Qty | Rate | Amount                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / [Agency commission] / GST / TOTAL       │
//	│  FOOTER: Payment details (optional) + Notes (optional)      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/socialxspark/invoice-api/internal/domain/entity"
	"github.com/socialxspark/invoice-api/internal/domain/invoice"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorBrand  = &props.Color{Red: 234, Green: 88, Blue: 12} // orange
	colorInk    = &props.Color{Red: 17, Green: 24, Blue: 39}
	colorGray   = &props.Color{Red: 107, Green: 114, Blue: 128}
	colorBlue   = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorStripe = &props.Color{Red: 249, Green: 250, Blue: 251}
)

var moneyPrinter = message.NewPrinter(language.English)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the invoice and returns its bytes. Totals come
// in already computed; nothing is recalculated here.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	inv *entity.Invoice,
	totals invoice.Totals,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+inv.InvoiceNumber, true).
		WithAuthor(inv.Sender.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorBrand, Thickness: 0.5}))
	m.AddRows(qrRow(inv, totals))
	m.AddRows(partiesRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorBrand, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(inv.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorBrand, Thickness: 0.3}))
	m.AddRows(totalsRow(inv, totals))

	for _, r := range footerRows(inv) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: sender brand (left), INVOICE + number + date (right).
func headerRow(inv *entity.Invoice) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(inv.Sender.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorBrand, Top: 1,
			}),
			text.New("Professional Growth Billing Suite", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New("Currency: INR", props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Right,
				Color: colorInk, Top: 1,
			}),
			text.New("#"+inv.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorBrand, Top: 9,
			}),
			text.New("Date: "+inv.Date, props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
	)
}

// qrRow: scannable summary of the document, same payload as the original
// renderer (number, date, total, billed-to).
func qrRow(inv *entity.Invoice, totals invoice.Totals) core.Row {
	payload := fmt.Sprintf("Invoice: %s\nDate: %s\nTotal: %s\nBilled To: %s",
		inv.InvoiceNumber, inv.Date, totals.Total.StringFixed(2), inv.Client.Name)

	return row.New(24).Add(
		col.New(9),
		col.New(3).Add(code.NewQr(payload, props.Rect{Percent: 90, Center: true})),
	)
}

// partiesRow: FROM (sender) and BILL TO (client) side by side.
func partiesRow(inv *entity.Invoice) core.Row {
	return row.New(22).Add(
		col.New(6).Add(
			text.New("FROM", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorBrand, Top: 1,
			}),
			text.New(inv.Sender.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6, Color: colorInk,
			}),
			text.New(inv.Sender.Email, props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New(fmt.Sprintf("%s   |   GSTIN: %s",
				nonEmpty(inv.Sender.Address, "—"),
				nonEmpty(inv.Sender.TaxID, "—"),
			), props.Text{Size: 8, Top: 17, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorBlue, Top: 1,
			}),
			text.New(inv.Client.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6, Color: colorInk,
			}),
			text.New(nonEmpty(inv.Client.Address, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: column headings of the items table.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorBrand, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Qty", 1, align.Center),
		h("Rate", 2, align.Right),
		h("Amount", 3, align.Right),
	)
}

// tableItemRows: one row per line item, insertion order is display order.
// Every other row carries a light background stripe.
func tableItemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		amount := it.Quantity.Mul(it.Rate)
		r := row.New(7).Add(
			col.New(6).Add(text.New(
				nonEmpty(it.Description, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(it.Rate),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Style: fontstyle.Bold, Color: colorBrand},
			)),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

// totalsRow: subtotal, agency commission when enabled, tax at the configured
// rate, grand total.
func totalsRow(inv *entity.Invoice, totals invoice.Totals) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	labels := []core.Component{label("Subtotal:", 1)}
	values := []core.Component{value(formatMoney(totals.Subtotal), 1)}
	y := 6.0
	if inv.Agency.Enabled {
		labels = append(labels, label(fmt.Sprintf("Agency commission (%s%%):", inv.Agency.CommissionRatePercent.String()), y))
		values = append(values, value(formatMoney(totals.Commission), y))
		y += 5
	}
	labels = append(labels, label(fmt.Sprintf("GST (%s%%):", inv.TaxRatePercent.String()), y))
	values = append(values, value(formatMoney(totals.TaxAmount), y))
	y += 6

	labels = append(labels, text.New("TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right,
		Color: colorBrand, Right: 2, Top: y,
	}))
	values = append(values, text.New(formatMoney(totals.Total), props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right,
		Color: colorBrand, Right: 1, Top: y,
	}))

	return row.New(28).Add(
		col.New(5),
		col.New(4).Add(labels...),
		col.New(3).Add(values...),
	)
}

// footerRows: payment details (suppressed when the bank block is entirely
// absent) and free-text notes (suppressed when empty).
func footerRows(inv *entity.Invoice) []core.Row {
	var rows []core.Row

	if !inv.Bank.Empty() || inv.Notes != "" {
		rows = append(rows,
			row.New(4),
			line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		)
	}

	if !inv.Bank.Empty() {
		rows = append(rows, row.New(18).Add(col.New(6).Add(
			text.New("PAYMENT DETAILS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorBlue, Top: 1,
			}),
			text.New("Bank: "+nonEmpty(inv.Bank.Name, "—"), props.Text{Size: 8, Top: 6, Color: colorInk}),
			text.New("A/c: "+nonEmpty(inv.Bank.Account, "—"), props.Text{Size: 8, Top: 10, Color: colorInk}),
			text.New("IFSC: "+nonEmpty(inv.Bank.RoutingCode, "—"), props.Text{Size: 8, Top: 14, Color: colorInk}),
		)))
	}

	if inv.Notes != "" {
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New("NOTES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorBrand, Top: 1,
			}),
			text.New(inv.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney renders a decimal with grouped thousands and two decimals,
// e.g. 2500 -> "2,500.00". Display formatting only; the totals themselves
// are never rounded.
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return moneyPrinter.Sprintf("%.2f", f)
}
