package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/socialxspark/invoice-api/internal/infrastructure/filestore"
	"github.com/socialxspark/invoice-api/pkg/config"
	"github.com/socialxspark/invoice-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "invoicectl",
	Short: "Operator CLI for the SocialXspark invoice store",
	Long: `invoicectl works directly against the invoice file store used by the
API server: list the stored invoices or render one to a PDF without going
through HTTP.

The store path comes from the same configuration as the server
(STORE_PATH, default invoices.json).`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore loads configuration and opens the file store the commands
// operate on.
func openStore() (*filestore.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})
	return filestore.Open(afero.NewOsFs(), cfg.Store.Path, log.Zerolog())
}
