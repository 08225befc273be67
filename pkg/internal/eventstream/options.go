package eventstream

import "github.com/mtlab/wfirma-go/pkg/internal/types"

// WithWriter injects the Kafka producer. A *kafka.Writer is the usual
// implementation.
func WithWriter(w KafkaWriter) types.Option[*Publisher] {
	return func(p *Publisher) {
		p.writer = w
	}
}

// WithTopic sets the destination topic for writers that do not carry one.
func WithTopic(topic string) types.Option[*Publisher] {
	return func(p *Publisher) {
		p.topic = topic
	}
}

// WithSource overrides the source header stamped on every message.
func WithSource(source string) types.Option[*Publisher] {
	return func(p *Publisher) {
		p.source = source
	}
}

// WithLogger attaches loggers at construction time.
func WithLogger(loggers ...types.Logger) types.Option[*Publisher] {
	return func(p *Publisher) {
		p.ConnectLogger(loggers...)
	}
}
