package wfirma

import (
	"context"
	"time"

	"github.com/mtlab/wfirma-go/pkg/internal/dashboard"
)

// DashboardServer serves the invoice dashboard, its JSON API and the
// refresh websocket.
type DashboardServer = dashboard.Server

// InvoiceSource feeds the dashboard. The API client satisfies it through
// ClientSource; tests hand in stubs.
type InvoiceSource = dashboard.InvoiceSource

const (
	DashboardDefaultAddr         = dashboard.DefaultAddr
	DashboardDefaultPollInterval = dashboard.DefaultPollInterval
)

// NewDashboardServer builds a server from options. A source is required.
func NewDashboardServer(options ...Option[*DashboardServer]) (*DashboardServer, error) {
	return dashboard.NewServer(options...)
}

// DashboardWithAddr sets the listen address.
func DashboardWithAddr(addr string) Option[*DashboardServer] {
	return dashboard.WithAddr(addr)
}

// DashboardWithSource sets the invoice source.
func DashboardWithSource(source InvoiceSource) Option[*DashboardServer] {
	return dashboard.WithSource(source)
}

// DashboardWithPollInterval sets the websocket refresh cadence.
func DashboardWithPollInterval(interval time.Duration) Option[*DashboardServer] {
	return dashboard.WithPollInterval(interval)
}

// DashboardWithLogger attaches loggers to the server.
func DashboardWithLogger(loggers ...Logger) Option[*DashboardServer] {
	return dashboard.WithLogger(loggers...)
}

// ClientSource adapts an API client into an InvoiceSource. Each period
// request becomes one invoices find call.
type ClientSource struct {
	client *Client
}

var _ InvoiceSource = (*ClientSource)(nil)

// NewClientSource wraps client as a dashboard source.
func NewClientSource(client *Client) *ClientSource {
	return &ClientSource{client: client}
}

// InvoicesByPeriod fetches the invoices issued in [from, to].
func (s *ClientSource) InvoicesByPeriod(ctx context.Context, from, to string) ([]Map, error) {
	doc, err := s.client.Invoices.Find(ctx, PeriodQuery(from, to, DefaultQueryLimit))
	if err != nil {
		return nil, err
	}
	return CollectInvoices(doc), nil
}
