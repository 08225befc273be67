// Package dashboard serves the invoice web views: an HTML list with
// filtering, sorting and pagination, a period report, the JSON endpoints
// backing both, and a websocket feed that tells open pages to refresh.
// Invoice data comes through the InvoiceSource seam so the server never
// holds vendor credentials itself.
package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
	"github.com/mtlab/wfirma-go/pkg/internal/utils"
	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

const (
	DefaultAddr         = ":8000"
	DefaultPollInterval = 30 * time.Second
)

// InvoiceSource fetches raw invoice records for one date range, both
// bounds inclusive and formatted YYYY-MM-DD.
type InvoiceSource interface {
	InvoicesByPeriod(ctx context.Context, from, to string) ([]xmlcodec.Map, error)
}

// Server hosts the dashboard routes.
type Server struct {
	componentMetadata types.ComponentMetadata

	addr         string
	source       InvoiceSource
	pollInterval time.Duration
	hub          *hub

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewServer builds a dashboard server and applies options. An invoice
// source is required.
func NewServer(options ...types.Option[*Server]) (*Server, error) {
	s := &Server{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "DASHBOARD",
		},
		addr:         DefaultAddr,
		pollInterval: DefaultPollInterval,
		hub:          newHub(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.source == nil {
		return nil, fmt.Errorf("dashboard: an invoice source is required")
	}
	return s, nil
}

// Handler returns the routed handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	// No blanket write timeout: the websocket route holds connections
	// open past any sane one.
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go s.refreshLoop(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	s.NotifyLoggers(types.InfoLevel, "%s => level: INFO, event: Start, address: %s, poll: %s => Dashboard listening", s.componentMetadata, s.addr, s.pollInterval)
	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.withRequestID, s.accessLog)
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/report", s.handleReport).Methods(http.MethodGet)
	r.HandleFunc("/api/invoices", s.handleAPIInvoices).Methods(http.MethodGet)
	r.HandleFunc("/api/report", s.handleAPIReport).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	return r
}

// refreshLoop tells connected pages to re-fetch on every tick.
func (s *Server) refreshLoop(ctx context.Context) {
	if s.pollInterval <= 0 {
		return
	}
	tick := time.NewTicker(s.pollInterval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if delivered := s.hub.broadcast("refresh"); delivered > 0 {
				s.NotifyLoggers(types.DebugLevel, "%s => level: DEBUG, event: Refresh, subscribers: %d => Refresh pushed", s.componentMetadata, delivered)
			}
		}
	}
}
