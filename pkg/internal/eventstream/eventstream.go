// Package eventstream publishes fetched invoice records to Kafka so
// downstream consumers can react to invoicing activity without polling the
// vendor API themselves. Records go out as JSON, keyed by invoice id.
package eventstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/segmentio/kafka-go"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
	"github.com/mtlab/wfirma-go/pkg/internal/utils"
	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

const (
	// SchemaHeader names the JSON shape carried in the message value.
	SchemaHeader = "wfirma.invoice.v1"

	defaultSource = "wfirma-go"
)

// KafkaWriter is the slice of the kafka-go producer surface the publisher
// needs. A *kafka.Writer satisfies it.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher turns decoded invoice records into Kafka messages.
type Publisher struct {
	componentMetadata types.ComponentMetadata

	writer KafkaWriter
	topic  string
	source string

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewPublisher builds a publisher and applies options. A writer is required.
func NewPublisher(options ...types.Option[*Publisher]) (*Publisher, error) {
	p := &Publisher{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "EVENT_STREAM",
		},
		source: defaultSource,
	}
	for _, opt := range options {
		opt(p)
	}
	if p.writer == nil {
		return nil, fmt.Errorf("eventstream: a Kafka writer is required")
	}
	return p, nil
}

// PublishInvoices sends one JSON message per invoice record and returns the
// published count. The invoice id is the message key so one invoice's
// updates land on one partition; records without an id are skipped.
func (p *Publisher) PublishInvoices(ctx context.Context, invoices []xmlcodec.Map) (int, error) {
	topic, carried := p.effectiveTopic()
	if topic == "" {
		return 0, fmt.Errorf("eventstream: no topic configured")
	}

	msgs := make([]kafka.Message, 0, len(invoices))
	skipped := 0
	for _, rec := range invoices {
		id := strings.TrimSpace(rec.Text("id"))
		if id == "" {
			skipped++
			continue
		}
		value, err := json.Marshal(rec)
		if err != nil {
			return 0, fmt.Errorf("eventstream: encode invoice %s: %w", id, err)
		}
		msg := kafka.Message{
			Key:   []byte(id),
			Value: value,
			Headers: []kafka.Header{
				{Key: "schema", Value: []byte(SchemaHeader)},
				{Key: "source", Value: []byte(p.source)},
			},
		}
		// kafka-go rejects a per-message topic when the writer already
		// carries one.
		if !carried {
			msg.Topic = topic
		}
		msgs = append(msgs, msg)
	}
	if skipped > 0 {
		p.NotifyLoggers(types.WarnLevel, "%s => level: WARN, event: PublishInvoices, skipped: %d => Records without an id were not published", p.componentMetadata, skipped)
	}
	if len(msgs) == 0 {
		return 0, nil
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, event: PublishInvoices, topic: %s, error: %v => Publish failed", p.componentMetadata, topic, err)
		return 0, fmt.Errorf("eventstream: publish to %s: %w", topic, err)
	}
	p.NotifyLoggers(types.InfoLevel, "%s => level: INFO, event: PublishInvoices, topic: %s, records: %d => Batch published", p.componentMetadata, topic, len(msgs))
	return len(msgs), nil
}

// effectiveTopic resolves the destination. A topic on an injected
// *kafka.Writer wins so callers configuring kafka-go directly keep control.
func (p *Publisher) effectiveTopic() (topic string, carriedByWriter bool) {
	if w, ok := p.writer.(*kafka.Writer); ok {
		if t := strings.TrimSpace(w.Topic); t != "" {
			return t, true
		}
	}
	return strings.TrimSpace(p.topic), false
}
