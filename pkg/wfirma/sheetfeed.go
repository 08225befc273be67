package wfirma

import (
	"net/http"
	"time"

	"github.com/mtlab/wfirma-go/pkg/internal/sheetfeed"
)

// SheetFeed pulls expected payments from a published spreadsheet CSV.
type SheetFeed = sheetfeed.Feed

// ExpectedPayment is one sheet row.
type ExpectedPayment = sheetfeed.ExpectedPayment

// Discrepancy is one mismatch between the sheet and the invoice rows.
type Discrepancy = sheetfeed.Discrepancy

// Discrepancy kinds.
const (
	ReconcileMissing        = sheetfeed.KindMissing
	ReconcileAmountMismatch = sheetfeed.KindAmountMismatch
)

// NewSheetFeed builds a feed from options.
func NewSheetFeed(options ...Option[*SheetFeed]) *SheetFeed {
	return sheetfeed.NewFeed(options...)
}

// SheetFeedWithURL sets the published CSV URL.
func SheetFeedWithURL(url string) Option[*SheetFeed] {
	return sheetfeed.WithURL(url)
}

// SheetFeedWithTimeout sets the fetch timeout.
func SheetFeedWithTimeout(d time.Duration) Option[*SheetFeed] {
	return sheetfeed.WithTimeout(d)
}

// SheetFeedWithHTTPClient replaces the HTTP client.
func SheetFeedWithHTTPClient(c *http.Client) Option[*SheetFeed] {
	return sheetfeed.WithHTTPClient(c)
}

// SheetFeedWithLogger attaches loggers to the feed.
func SheetFeedWithLogger(loggers ...Logger) Option[*SheetFeed] {
	return sheetfeed.WithLogger(loggers...)
}

// Reconcile compares expected payments against invoice rows.
func Reconcile(expected []ExpectedPayment, invoices []Invoice) []Discrepancy {
	return sheetfeed.Reconcile(expected, invoices)
}
