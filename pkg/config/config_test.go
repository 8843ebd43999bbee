package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialxspark/invoice-api/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "SX-", cfg.Invoice.NumberPrefix)
	assert.Equal(t, 18, cfg.Invoice.TaxRatePercent)
	assert.Equal(t, 15, cfg.Invoice.CommissionRatePercent)
	assert.Equal(t, "invoices.json", cfg.Store.Path)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("STORE_PATH", "/var/lib/invoices.json")
	t.Setenv("INVOICE_GST_RATE", "12")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, "/var/lib/invoices.json", cfg.Store.Path)
	assert.Equal(t, 12, cfg.Invoice.TaxRatePercent)
}
