package wfirma

import (
	"github.com/mtlab/wfirma-go/pkg/internal/eventstream"
)

// Publisher pushes invoice records onto a Kafka topic.
type Publisher = eventstream.Publisher

// KafkaWriter is the slice of the kafka-go writer the publisher needs.
type KafkaWriter = eventstream.KafkaWriter

// EventSchemaHeader is the schema header stamped on every message.
const EventSchemaHeader = eventstream.SchemaHeader

// NewPublisher builds a publisher from options. A writer is required.
func NewPublisher(options ...Option[*Publisher]) (*Publisher, error) {
	return eventstream.NewPublisher(options...)
}

// PublisherWithWriter sets the Kafka writer.
func PublisherWithWriter(w KafkaWriter) Option[*Publisher] {
	return eventstream.WithWriter(w)
}

// PublisherWithTopic sets the destination topic for topic-less writers.
func PublisherWithTopic(topic string) Option[*Publisher] {
	return eventstream.WithTopic(topic)
}

// PublisherWithSource overrides the source header value.
func PublisherWithSource(source string) Option[*Publisher] {
	return eventstream.WithSource(source)
}

// PublisherWithLogger attaches loggers to the publisher.
func PublisherWithLogger(loggers ...Logger) Option[*Publisher] {
	return eventstream.WithLogger(loggers...)
}
