package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mtlab/wfirma-go/pkg/wfirma"
)

// Runs a find query with an order clause. Conditions and ordering have no
// typed builder; the Raw body is the escape hatch for the full query
// syntax.
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

	// The 20 newest invoices, mirroring the vendor's query document shape.
	body := wfirma.Raw(`<?xml version="1.0" encoding="UTF-8"?>
	<api>
		<invoices>
			<parameters>
				<page>1</page>
				<limit>20</limit>
				<order>
					<desc>date</desc>
				</order>
			</parameters>
		</invoices>
	</api>`)

	doc, err := client.Invoices.Find(ctx, body)
	if err != nil {
		panic(err)
	}

	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(pretty))
}
