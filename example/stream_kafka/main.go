package main

import (
	"context"
	"fmt"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"github.com/mtlab/wfirma-go/pkg/wfirma"
)

// Fetches this month's invoices and publishes them to Kafka as JSON
// events keyed by invoice id.
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

	now := time.Now()
	from, to := wfirma.DateRange(now.Year(), int(now.Month()), 0)
	doc, err := client.Invoices.Find(ctx, wfirma.PeriodQuery(from, to, wfirma.DefaultQueryLimit))
	if err != nil {
		panic(err)
	}
	records := wfirma.CollectInvoices(doc)

	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Kafka.Brokers...),
		Topic:    cfg.Kafka.Topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	publisher, err := wfirma.NewPublisher(
		wfirma.PublisherWithWriter(writer),
		wfirma.PublisherWithSource("stream-kafka-example"),
	)
	if err != nil {
		panic(err)
	}

	published, err := publisher.PublishInvoices(ctx, records)
	if err != nil {
		panic(err)
	}
	fmt.Printf("published %d of %d invoices to %s\n", published, len(records), cfg.Kafka.Topic)
}
