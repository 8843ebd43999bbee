package billing

import (
	"context"

	"github.com/socialxspark/invoice-api/internal/domain/entity"
	"github.com/socialxspark/invoice-api/internal/domain/invoice"
)

// InvoicePDFGenerator renders an invoice plus its already-computed totals
// into document bytes. The renderer recomputes nothing.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, totals invoice.Totals) ([]byte, error)
}
