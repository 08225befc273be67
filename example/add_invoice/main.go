package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mtlab/wfirma-go/pkg/wfirma"
)

// Creates an invoice from flat record fields, then emails it. Positions
// and other nested structures go through AddXML instead.
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

	doc, err := client.Invoices.Add(ctx, []wfirma.Field{
		{Name: "contractor", Value: "12345"},
		{Name: "paymentmethod", Value: "transfer"},
		{Name: "paymentdate", Value: time.Now().AddDate(0, 0, 14).Format("2006-01-02")},
		{Name: "type", Value: "normal"},
	})
	if err != nil {
		panic(err)
	}

	recs := wfirma.CollectInvoices(doc)
	if len(recs) == 0 {
		fmt.Println("no invoice record in the response")
		return
	}
	id := recs[0].Text("id")
	fmt.Printf("created invoice %s (%s)\n", id, recs[0].Text("fullnumber"))

	if _, err := client.Invoices.Send(ctx, id,
		wfirma.Field{Name: "email", Value: "billing@example.com"},
		wfirma.Field{Name: "subject", Value: "Faktura " + recs[0].Text("fullnumber")},
	); err != nil {
		panic(err)
	}
	fmt.Println("invoice sent")
}
