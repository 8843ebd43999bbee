package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/socialxspark/invoice-api/internal/application/billing"
	infrapdf "github.com/socialxspark/invoice-api/internal/infrastructure/pdf"
)

var renderCmd = &cobra.Command{
	Use:   "render <invoice-id>",
	Short: "Render a stored invoice to a PDF file",
	Example: `  # Render to the default filename (invoice-<number>.pdf)
  invoicectl render INV-42c7…

  # Render to a chosen path
  invoicectl render INV-42c7… -o /tmp/invoice.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", "", "Output file path (default: invoice-<number>.pdf)")
}

func runRender(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	pdfUC := billing.NewPDFUseCase(store, infrapdf.NewMarotoPDFGenerator())
	pdfBytes, filename, err := pdfUC.DownloadInvoicePDF(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		out = filename
	}
	if err := os.WriteFile(out, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Printf("wrote %s (%d bytes)\n", out, len(pdfBytes))
	return nil
}
