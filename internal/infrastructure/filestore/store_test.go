package filestore_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialxspark/invoice-api/internal/domain"
	"github.com/socialxspark/invoice-api/internal/domain/entity"
	"github.com/socialxspark/invoice-api/internal/infrastructure/filestore"
)

const storePath = "invoices.json"

func openStore(t *testing.T, fs afero.Fs) *filestore.Store {
	t.Helper()
	s, err := filestore.Open(fs, storePath, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
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
}

// Round-trip: create followed by get returns a record equal to the input on
// every model field; id and timestamps are store-assigned and excluded.
func TestCreateGetRoundTrip(t *testing.T) {
	store := openStore(t, afero.NewMemMapFs())

	in := sampleInvoice()
	created, err := store.Create(in)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.ID[:4] == "INV-", "store id %q should carry the INV- prefix", created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := store.GetByID(created.ID)
	require.NoError(t, err)

	want := in.Clone()
	want.ID = got.ID
	want.CreatedAt = got.CreatedAt
	want.UpdatedAt = got.UpdatedAt
	assert.Equal(t, want, got)
}

func TestGetUnknownID(t *testing.T) {
	store := openStore(t, afero.NewMemMapFs())

	_, err := store.GetByID("INV-missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Update replaces the record wholesale but keeps the store-assigned
// identity and creation time.
func TestUpdateReplacesWholesale(t *testing.T) {
	store := openStore(t, afero.NewMemMapFs())

	created, err := store.Create(sampleInvoice())
	require.NoError(t, err)

	next := sampleInvoice()
	next.Client.Name = "Globex"
	next.Notes = ""
	next.Items = next.Items[:1]

	updated, err := store.Update(created.ID, next)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Globex", updated.Client.Name)
	assert.Empty(t, updated.Notes, "update is a full replace, not a merge")
	assert.Len(t, updated.Items, 1)
}

func TestUpdateUnknownID(t *testing.T) {
	store := openStore(t, afero.NewMemMapFs())

	_, err := store.Update("INV-missing", sampleInvoice())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Delete is idempotent by identifier: the record goes away once and a
// second call reports the distinct not-found outcome.
func TestDelete(t *testing.T) {
	store := openStore(t, afero.NewMemMapFs())

	created, err := store.Create(sampleInvoice())
	require.NoError(t, err)

	require.NoError(t, store.Delete(created.ID))

	_, err = store.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(created.ID), domain.ErrNotFound)
}

func TestListSorted(t *testing.T) {
	store := openStore(t, afero.NewMemMapFs())

	first, err := store.Create(sampleInvoice())
	require.NoError(t, err)
	second := sampleInvoice()
	second.InvoiceNumber = "SX-1002"
	_, err = store.Create(second)
	require.NoError(t, err)

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].CreatedAt.After(list[1].CreatedAt), "oldest record first")
	if !list[0].CreatedAt.Equal(list[1].CreatedAt) {
		assert.Equal(t, first.ID, list[0].ID)
	}
}

// Every mutation flushes the whole dataset to the file, so a new store on
// the same filesystem sees everything.
func TestPersistenceAcrossReopen(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := openStore(t, fs)

	created, err := store.Create(sampleInvoice())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened := openStore(t, fs)
	got, err := reopened.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	list, err := reopened.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// The store hands out clones; mutating a returned record must not leak
// into the dataset.
func TestReturnedRecordsAreCopies(t *testing.T) {
	store := openStore(t, afero.NewMemMapFs())

	created, err := store.Create(sampleInvoice())
	require.NoError(t, err)

	created.Client.Name = "tampered"
	created.Items[0].Description = "tampered"

	got, err := store.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Media", got.Client.Name)
	assert.Equal(t, "Brand Collaboration", got.Items[0].Description)
}
