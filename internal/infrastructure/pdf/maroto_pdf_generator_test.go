package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialxspark/invoice-api/internal/domain/entity"
	"github.com/socialxspark/invoice-api/internal/domain/invoice"
	infrapdf "github.com/socialxspark/invoice-api/internal/infrastructure/pdf"
)

func render(t *testing.T, inv *entity.Invoice) []byte {
	t.Helper()
	totals := invoice.ComputeInvoiceTotals(inv)
	data, err := infrapdf.NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), inv, totals)
	require.NoError(t, err)
	return data
}

func TestGenerateInvoicePDF(t *testing.T) {
	inv := &entity.Invoice{
		InvoiceNumber: "SX-1001",
		Date:          "2026-08-28",
		Sender: entity.Party{
			Name:    "SocialXspark Agency",
			Email:   "billing@socialxspark.com",
			Address: "Mumbai, India",
			TaxID:   "27AAAAA0000A1Z5",
		},
		Client: entity.Client{Name: "Acme Media", Address: "Bengaluru"},
		Items: []entity.LineItem{
			{ID: "li-1", Description: "Brand Collaboration", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(500)},
			{ID: "li-2", Description: "Campaign Management", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(1500)},
		},
		Bank:           entity.BankDetails{Name: "HDFC", Account: "1234567890", RoutingCode: "HDFC0000123"},
		Notes:          "Payable within 14 days.",
		TaxRatePercent: decimal.NewFromInt(18),
		Agency:         entity.Agency{Enabled: true, CommissionRatePercent: decimal.NewFromInt(15)},
	}

	data := render(t, inv)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(data), 1000, "document looks suspiciously small")
}

// A minimal invoice exercises the suppression paths: no payment-details
// block, no notes, no commission row.
func TestGenerateInvoicePDF_MinimalInvoice(t *testing.T) {
	inv := &entity.Invoice{
		InvoiceNumber:  "SX-1002",
		Date:           "2026-08-28",
		Sender:         entity.Party{Name: "SocialXspark Agency"},
		Client:         entity.Client{Name: "Acme Media"},
		Items:          []entity.LineItem{{ID: "li-1", Description: "Audit", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(100)}},
		TaxRatePercent: decimal.Zero,
	}

	data := render(t, inv)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
