package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/socialxspark/invoice-api/internal/domain/invoice"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the invoices in the store",
	Example: `  # List every stored invoice with its computed total
  invoicectl list`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	invoices, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tDATE\tCLIENT\tTOTAL")
	for _, inv := range invoices {
		totals := invoice.ComputeInvoiceTotals(inv)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			inv.ID, inv.InvoiceNumber, inv.Date, inv.Client.Name, totals.Total.StringFixed(2))
	}
	return w.Flush()
}
