package eventstream

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/segmentio/kafka-go"

	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

type captureWriter struct {
	msgs []kafka.Message
	err  error
}

func (c *captureWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if c.err != nil {
		return c.err
	}
	c.msgs = append(c.msgs, msgs...)
	return nil
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestPublishInvoices(t *testing.T) {
	writer := &captureWriter{}
	pub, err := NewPublisher(WithWriter(writer), WithTopic("wfirma.invoices"))
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}

	invoices := []xmlcodec.Map{
		{"id": "42", "fullnumber": "FV 1/2024", "brutto": "123.00"},
		{"fullnumber": "FV no-id/2024"},
		{"id": "43", "fullnumber": "FV 2/2024"},
	}
	published, err := pub.PublishInvoices(context.Background(), invoices)
	if err != nil {
		t.Fatalf("publish error: %v", err)
	}
	if published != 2 {
		t.Fatalf("expected 2 published, got %d", published)
	}
	if len(writer.msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(writer.msgs))
	}

	first := writer.msgs[0]
	if string(first.Key) != "42" {
		t.Fatalf("expected the invoice id as key, got %q", first.Key)
	}
	if first.Topic != "wfirma.invoices" {
		t.Fatalf("expected the configured topic on the message, got %q", first.Topic)
	}
	if headerValue(first, "schema") != SchemaHeader {
		t.Fatalf("unexpected schema header %q", headerValue(first, "schema"))
	}
	if headerValue(first, "source") != "wfirma-go" {
		t.Fatalf("unexpected source header %q", headerValue(first, "source"))
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(first.Value, &decoded); err != nil {
		t.Fatalf("value is not JSON: %v", err)
	}
	if decoded["fullnumber"] != "FV 1/2024" {
		t.Fatalf("unexpected value payload: %v", decoded)
	}

	if string(writer.msgs[1].Key) != "43" {
		t.Fatalf("expected id-less record to be skipped, second key %q", writer.msgs[1].Key)
	}
}

func TestPublishInvoicesCustomSource(t *testing.T) {
	writer := &captureWriter{}
	pub, err := NewPublisher(WithWriter(writer), WithTopic("t"), WithSource("billing-sync"))
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}
	if _, err := pub.PublishInvoices(context.Background(), []xmlcodec.Map{{"id": "1"}}); err != nil {
		t.Fatalf("publish error: %v", err)
	}
	if headerValue(writer.msgs[0], "source") != "billing-sync" {
		t.Fatalf("expected the source override, got %q", headerValue(writer.msgs[0], "source"))
	}
}

func TestPublishInvoicesEmptyBatch(t *testing.T) {
	writer := &captureWriter{}
	pub, err := NewPublisher(WithWriter(writer), WithTopic("t"))
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}

	published, err := pub.PublishInvoices(context.Background(), []xmlcodec.Map{{"fullnumber": "no id"}})
	if err != nil {
		t.Fatalf("publish error: %v", err)
	}
	if published != 0 || len(writer.msgs) != 0 {
		t.Fatalf("expected nothing published, got %d/%d", published, len(writer.msgs))
	}
}

func TestPublishInvoicesRequiresTopic(t *testing.T) {
	pub, err := NewPublisher(WithWriter(&captureWriter{}))
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}
	if _, err := pub.PublishInvoices(context.Background(), []xmlcodec.Map{{"id": "1"}}); err == nil {
		t.Fatal("expected an error without a topic")
	}
}

func TestNewPublisherRequiresWriter(t *testing.T) {
	if _, err := NewPublisher(WithTopic("t")); err == nil {
		t.Fatal("expected an error without a writer")
	}
}

func TestPublishInvoicesSurfacesWriteError(t *testing.T) {
	writer := &captureWriter{err: errors.New("broker down")}
	pub, err := NewPublisher(WithWriter(writer), WithTopic("t"))
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}
	_, err = pub.PublishInvoices(context.Background(), []xmlcodec.Map{{"id": "1"}})
	if err == nil || !strings.Contains(err.Error(), "broker down") {
		t.Fatalf("expected the write error to surface, got %v", err)
	}
}

func TestEffectiveTopic(t *testing.T) {
	pub, err := NewPublisher(WithWriter(&captureWriter{}), WithTopic("configured"))
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}
	if topic, carried := pub.effectiveTopic(); carried || topic != "configured" {
		t.Fatalf("expected the configured topic, got %q (carried=%v)", topic, carried)
	}

	pub, err = NewPublisher(WithWriter(&kafka.Writer{Topic: "carried"}), WithTopic("configured"))
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}
	if topic, carried := pub.effectiveTopic(); !carried || topic != "carried" {
		t.Fatalf("expected the writer topic to win, got %q (carried=%v)", topic, carried)
	}
}
