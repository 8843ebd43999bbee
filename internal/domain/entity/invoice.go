package entity

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the issue-date format. The date carries no time component.
const DateLayout = "2006-01-02"

// Party is the issuing side of an invoice.
type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	TaxID   string `json:"gst"`
}

// Client is the billed side. Name must be non-empty for a valid invoice.
type Client struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// BankDetails are optional payment instructions. When every field is empty
// the payment-details block is suppressed in rendering.
type BankDetails struct {
	Name        string `json:"name"`
	Account     string `json:"account"`
	RoutingCode string `json:"ifsc"`
}

// Empty reports whether no payment instructions were provided.
func (b BankDetails) Empty() bool {
	return b.Name == "" && b.Account == "" && b.RoutingCode == ""
}

// Agency is the optional commission configuration. The commission is a
// percentage of the subtotal, added before tax.
type Agency struct {
	Enabled               bool            `json:"enabled"`
	CommissionRatePercent decimal.Decimal `json:"commissionRate"`
}

// Invoice is the root document. ID, CreatedAt and UpdatedAt are assigned by
// the store at persistence time, never by the model.
type Invoice struct {
	ID             string          `json:"id,omitempty"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	Date           string          `json:"date"`
	Sender         Party           `json:"sender"`
	Client         Client          `json:"client"`
	Items          []LineItem      `json:"items"`
	Bank           BankDetails     `json:"bank"`
	Notes          string          `json:"notes,omitempty"`
	TaxRatePercent decimal.Decimal `json:"gstRate"`
	Agency         Agency          `json:"agency"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// DraftDefaults seed a fresh draft. They come from configuration; the wizard
// used to hardcode them client-side.
type DraftDefaults struct {
	NumberPrefix          string
	Sender                Party
	TaxRatePercent        decimal.Decimal
	CommissionRatePercent decimal.Decimal
	Notes                 string
}

// NewDraft builds the draft an authoring session starts from: generated
// invoice number, today's date, one blank line item, commission disabled.
func NewDraft(def DraftDefaults) *Invoice {
	return &Invoice{
		InvoiceNumber:  fmt.Sprintf("%s%d", def.NumberPrefix, 1000+rand.Intn(9000)),
		Date:           time.Now().Format(DateLayout),
		Sender:         def.Sender,
		Client:         Client{},
		Items:          []LineItem{NewLineItem()},
		Bank:           BankDetails{},
		Notes:          def.Notes,
		TaxRatePercent: def.TaxRatePercent,
		Agency: Agency{
			Enabled:               false,
			CommissionRatePercent: def.CommissionRatePercent,
		},
	}
}

// Clone returns a deep copy. The store hands out clones so callers can never
// mutate its in-memory dataset behind its back.
func (inv *Invoice) Clone() *Invoice {
	out := *inv
	out.Items = make([]LineItem, len(inv.Items))
	copy(out.Items, inv.Items)
	return &out
}
