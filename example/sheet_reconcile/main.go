package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mtlab/wfirma-go/pkg/wfirma"
)

// Pulls the expected-payments sheet and reports where the invoices
// disagree with it. The sheet section of wfirma.toml carries the
// published CSV URL.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := wfirma.LoadConfig(wfirma.DefaultConfigPath, true)
	if err != nil {
		panic(err)
	}

	client, err := wfirma.NewClient(cfg.API.ClientOptions()...)
	if err != nil {
		panic(err)
	}

	feed := wfirma.NewSheetFeed(wfirma.SheetFeedWithURL(cfg.Sheet.URL))
	expected, err := feed.Fetch(ctx)
	if err != nil {
		panic(err)
	}

	now := time.Now()
	from, to := wfirma.DateRange(now.Year(), 0, 0)
	doc, err := client.Invoices.Find(ctx, wfirma.PeriodQuery(from, to, wfirma.DefaultQueryLimit))
	if err != nil {
		panic(err)
	}
	invoices := wfirma.InvoiceRows(doc)

	discrepancies := wfirma.Reconcile(expected, invoices)
	if len(discrepancies) == 0 {
		fmt.Printf("all %d expected payments match\n", len(expected))
		return
	}
	for _, d := range discrepancies {
		switch d.Kind {
		case wfirma.ReconcileMissing:
			fmt.Printf("%-20s missing, expected %s\n",
				d.InvoiceNumber, wfirma.FormatCurrency(d.Expected))
		case wfirma.ReconcileAmountMismatch:
			fmt.Printf("%-20s expected %s, invoiced %s\n",
				d.InvoiceNumber, wfirma.FormatCurrency(d.Expected), wfirma.FormatCurrency(d.Actual))
		}
	}
}
