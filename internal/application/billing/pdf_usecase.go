package billing

import (
	"context"
	"fmt"

	"github.com/socialxspark/invoice-api/internal/domain/entity"
	"github.com/socialxspark/invoice-api/internal/domain/invoice"
	"github.com/socialxspark/invoice-api/internal/domain/repository"
)

// PDFUseCase turns an invoice into its rendered document. Totals are
// recomputed from the record right before rendering; they are never read
// from storage because they are never stored.
type PDFUseCase struct {
	repo      repository.InvoiceRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(repo repository.InvoiceRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{repo: repo, generator: generator}
}

// DownloadInvoicePDF renders a stored invoice.
//
// Returns:
//   - (pdfBytes, filename, nil) on success.
//   - domain.ErrNotFound when the id is unknown.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}

	totals := invoice.ComputeInvoiceTotals(inv)
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, totals)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render invoice %s: %w", id, err)
	}

	return pdfBytes, fmt.Sprintf("invoice-%s.pdf", inv.InvoiceNumber), nil
}

// RenderPreview renders an invoice straight from the caller's payload
// without touching the store, the preview path of the wizard. The same
// validation that blocks save blocks render.
func (uc *PDFUseCase) RenderPreview(ctx context.Context, inv *entity.Invoice) ([]byte, error) {
	if err := invoice.ValidateInvoice(inv); err != nil {
		return nil, err
	}
	totals := invoice.ComputeInvoiceTotals(inv)
	out, err := uc.generator.GenerateInvoicePDF(ctx, inv, totals)
	if err != nil {
		return nil, fmt.Errorf("pdf: render preview: %w", err)
	}
	return out, nil
}
