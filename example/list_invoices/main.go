package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mtlab/wfirma-go/pkg/wfirma"
)

// Lists the newest invoices. Credentials come from wfirma.toml or the
// WFIRMA_* environment variables.
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

	doc, err := client.Invoices.FindBasic(ctx, 1, 20)
	if err != nil {
		panic(err)
	}

	for _, rec := range wfirma.CollectInvoices(doc) {
		fmt.Printf("%-20s %s %-30s %10s %s\n",
			rec.Text("fullnumber"), rec.Text("date"),
			rec.Text("contractor", "altname"), rec.Text("brutto"), rec.Text("currency"))
	}

	// The decoded tree is plain maps and lists, so it prints as JSON too.
	pretty, err := json.MarshalIndent(doc["invoices"], "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(pretty))
}
