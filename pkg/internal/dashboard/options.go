package dashboard

import (
	"time"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
)

// WithAddr sets the listen address.
func WithAddr(addr string) types.Option[*Server] {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithSource injects the invoice source.
func WithSource(source InvoiceSource) types.Option[*Server] {
	return func(s *Server) {
		s.source = source
	}
}

// WithPollInterval sets how often open pages are told to refresh. Zero or
// negative disables the feed's timer; connections still accept.
func WithPollInterval(interval time.Duration) types.Option[*Server] {
	return func(s *Server) {
		s.pollInterval = interval
	}
}

// WithLogger attaches loggers at construction time.
func WithLogger(loggers ...types.Logger) types.Option[*Server] {
	return func(s *Server) {
		s.ConnectLogger(loggers...)
	}
}
