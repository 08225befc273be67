package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mtlab/wfirma-go/pkg/wfirma"
)

// Builds last month's report and writes the rows to a parquet file.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := wfirma.LoadConfig(wfirma.DefaultConfigPath, true)
	if err != nil {
		panic(err)
	}

	client, err := wfirma.NewClient(cfg.API.ClientOptions()...)
	if err != nil {
		panic(err)
	}

	lastMonth := time.Now().AddDate(0, -1, 0)
	from, to := wfirma.DateRange(lastMonth.Year(), int(lastMonth.Month()), 0)

	doc, err := client.Invoices.Find(ctx, wfirma.PeriodQuery(from, to, wfirma.DefaultQueryLimit))
	if err != nil {
		panic(err)
	}
	rows := wfirma.InvoiceRows(doc)

	rep := wfirma.BuildReport(from, to, rows)
	fmt.Printf("period %s to %s: %d invoices, brutto %s\n",
		rep.From, rep.To, rep.Summary.Count, wfirma.FormatCurrency(rep.Summary.Brutto))
	for _, g := range rep.ByContractor {
		fmt.Printf("  %-30s %3d  %12s\n", g.Key, g.Count, wfirma.FormatCurrency(g.Brutto))
	}

	f, err := os.Create("invoices.parquet")
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := wfirma.WriteParquet(f, rows); err != nil {
		panic(err)
	}
	fmt.Println("rows written to invoices.parquet")
}
