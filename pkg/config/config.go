package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a config file).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Store   StoreConfig
	Invoice InvoiceConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig settings for the HTTP server.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig settings for the file-backed invoice store.
type StoreConfig struct {
	Path string // JSON file holding the whole invoice dataset
}

// InvoiceConfig defaults applied to a fresh invoice draft. These used to be
// hardcoded in the wizard UI; the server owns them now so every client draws
// the same draft.
type InvoiceConfig struct {
	NumberPrefix          string
	SenderName            string
	SenderEmail           string
	SenderAddress         string
	SenderTaxID           string
	TaxRatePercent        int // GST, applied to (subtotal + commission)
	CommissionRatePercent int // agency fee when enabled
	DefaultNotes          string
}

// Load reads configuration from environment variables (and optionally a
// config file). Env vars win. Expected names: APP_ENV, HTTP_PORT,
// STORE_PATH, INVOICE_NUMBER_PREFIX, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env); missing files are fine.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "socialxspark-invoice"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Store: StoreConfig{
			Path: getString(v, "STORE_PATH", "invoices.json"),
		},
		Invoice: InvoiceConfig{
			NumberPrefix:          getString(v, "INVOICE_NUMBER_PREFIX", "SX-"),
			SenderName:            getString(v, "INVOICE_SENDER_NAME", "SocialXspark Agency"),
			SenderEmail:           getString(v, "INVOICE_SENDER_EMAIL", "billing@socialxspark.com"),
			SenderAddress:         getString(v, "INVOICE_SENDER_ADDRESS", "Mumbai, India"),
			SenderTaxID:           getString(v, "INVOICE_SENDER_GST", "27AAAAA0000A1Z5"),
			TaxRatePercent:        getInt(v, "INVOICE_GST_RATE", 18),
			CommissionRatePercent: getInt(v, "INVOICE_COMMISSION_RATE", 15),
			DefaultNotes:          getString(v, "INVOICE_DEFAULT_NOTES", "SocialXspark never asks for social media passwords."),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
