// package sheetfeed ingests the expected-payments sheet. The sheet is
// published to the web as CSV; Fetch pulls it over HTTP and parses rows of
// invoice_number, due_date, amount, currency, note. Reconcile then checks
// the expectations against fetched invoices.
package sheetfeed

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
	"github.com/mtlab/wfirma-go/pkg/internal/utils"
)

// DefaultTimeout bounds one sheet download.
const DefaultTimeout = 15 * time.Second

// ExpectedPayment is one sheet row.
type ExpectedPayment struct {
	InvoiceNumber string
	DueDate       string
	Amount        float64
	Currency      string
	Note          string
}

// Feed downloads and parses the published sheet.
type Feed struct {
	componentMetadata types.ComponentMetadata

	url        string
	timeout    time.Duration
	httpClient *http.Client

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewFeed builds a feed with defaults and applies options.
func NewFeed(options ...types.Option[*Feed]) *Feed {
	f := &Feed{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SHEET_FEED",
		},
		timeout:    DefaultTimeout,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(f)
	}
	return f
}

// Fetch downloads the published CSV and parses it into payment rows.
func (f *Feed) Fetch(ctx context.Context) ([]ExpectedPayment, error) {
	if f.url == "" {
		return nil, fmt.Errorf("sheet feed: url is required")
	}
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("sheet feed: build request: %w", err)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, event: Fetch, error: %v => Sheet download failed", f.componentMetadata, err)
		return nil, fmt.Errorf("sheet feed: fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		f.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, event: Fetch, status: %d => Sheet download failed", f.componentMetadata, resp.StatusCode)
		return nil, fmt.Errorf("sheet feed: unexpected status %d", resp.StatusCode)
	}

	payments, err := ParsePayments(resp.Body)
	if err != nil {
		return nil, err
	}
	f.NotifyLoggers(types.InfoLevel, "%s => level: INFO, event: Fetch, rows: %d => Sheet parsed", f.componentMetadata, len(payments))
	return payments, nil
}
