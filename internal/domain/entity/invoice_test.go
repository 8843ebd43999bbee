package entity_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialxspark/invoice-api/internal/domain/entity"
)

func testDefaults() entity.DraftDefaults {
	return entity.DraftDefaults{
		NumberPrefix: "SX-",
		Sender: entity.Party{
			Name:    "SocialXspark Agency",
			Email:   "billing@socialxspark.com",
			Address: "Mumbai, India",
			TaxID:   "27AAAAA0000A1Z5",
		},
		TaxRatePercent:        decimal.NewFromInt(18),
		CommissionRatePercent: decimal.NewFromInt(15),
		Notes:                 "SocialXspark never asks for social media passwords.",
	}
}

func TestNewDraft(t *testing.T) {
	draft := entity.NewDraft(testDefaults())

	assert.True(t, strings.HasPrefix(draft.InvoiceNumber, "SX-"),
		"invoice number %q should carry the configured prefix", draft.InvoiceNumber)
	assert.Equal(t, time.Now().Format(entity.DateLayout), draft.Date)
	assert.Equal(t, "SocialXspark Agency", draft.Sender.Name)

	// One blank line item: empty description, quantity 1, rate 0.
	require.Len(t, draft.Items, 1)
	assert.Empty(t, draft.Items[0].Description)
	assert.True(t, draft.Items[0].Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, draft.Items[0].Rate.IsZero())
	assert.NotEmpty(t, draft.Items[0].ID)

	assert.False(t, draft.Agency.Enabled)
	assert.True(t, draft.Agency.CommissionRatePercent.Equal(decimal.NewFromInt(15)))
	assert.True(t, draft.TaxRatePercent.Equal(decimal.NewFromInt(18)))

	// Identity and timestamps belong to the store, not the model.
	assert.Empty(t, draft.ID)
	assert.True(t, draft.CreatedAt.IsZero())
}

func TestAddItem(t *testing.T) {
	draft := entity.NewDraft(testDefaults())
	first := draft.Items[0].ID

	added := draft.AddItem()

	require.Len(t, draft.Items, 2)
	assert.NotEqual(t, first, added.ID, "appended item must get a fresh local identity")
	assert.Empty(t, added.Description)
	assert.True(t, added.Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, added.Rate.IsZero())
}

func TestRemoveItem(t *testing.T) {
	t.Run("removes a matching row", func(t *testing.T) {
		draft := entity.NewDraft(testDefaults())
		second := draft.AddItem().ID

		assert.True(t, draft.RemoveItem(second))
		require.Len(t, draft.Items, 1)
	})

	t.Run("last remaining row is kept, refusal is a no-op", func(t *testing.T) {
		draft := entity.NewDraft(testDefaults())
		only := draft.Items[0]

		assert.False(t, draft.RemoveItem(only.ID))
		require.Len(t, draft.Items, 1)
		assert.Equal(t, only, draft.Items[0], "the surviving row must be unchanged")
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		draft := entity.NewDraft(testDefaults())
		draft.AddItem()

		assert.False(t, draft.RemoveItem("nope"))
		assert.Len(t, draft.Items, 2)
	})

	t.Run("insertion order survives a middle removal", func(t *testing.T) {
		draft := entity.NewDraft(testDefaults())
		first := draft.Items[0].ID
		middle := draft.AddItem().ID
		last := draft.AddItem().ID

		require.True(t, draft.RemoveItem(middle))
		require.Len(t, draft.Items, 2)
		assert.Equal(t, first, draft.Items[0].ID)
		assert.Equal(t, last, draft.Items[1].ID)
	})
}

func TestUpdateItem(t *testing.T) {
	draft := entity.NewDraft(testDefaults())
	id := draft.Items[0].ID

	desc := "Brand Collaboration"
	qty := decimal.NewFromInt(3)

	require.True(t, draft.UpdateItem(id, entity.LineItemPatch{Description: &desc, Quantity: &qty}))
	assert.Equal(t, "Brand Collaboration", draft.Items[0].Description)
	assert.True(t, draft.Items[0].Quantity.Equal(decimal.NewFromInt(3)))
	// Untouched fields keep their value.
	assert.True(t, draft.Items[0].Rate.IsZero())

	// Negative numbers are accepted; the patch never validates ranges.
	neg := decimal.NewFromInt(-5)
	require.True(t, draft.UpdateItem(id, entity.LineItemPatch{Rate: &neg}))
	assert.True(t, draft.Items[0].Rate.Equal(neg))

	assert.False(t, draft.UpdateItem("nope", entity.LineItemPatch{Description: &desc}))
}

func TestClone(t *testing.T) {
	draft := entity.NewDraft(testDefaults())
	draft.Client.Name = "Acme Media"

	clone := draft.Clone()
	clone.Client.Name = "Someone Else"
	clone.Items[0].Description = "tampered"

	assert.Equal(t, "Acme Media", draft.Client.Name)
	assert.Empty(t, draft.Items[0].Description, "clone shares no item storage with the original")
}
