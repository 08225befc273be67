package sheetfeed

import (
	"net/http"
	"time"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
)

// WithURL sets the published CSV export address.
func WithURL(url string) types.Option[*Feed] {
	return func(f *Feed) {
		f.url = url
	}
}

// WithTimeout overrides the per-download timeout.
func WithTimeout(d time.Duration) types.Option[*Feed] {
	return func(f *Feed) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) types.Option[*Feed] {
	return func(f *Feed) {
		if c != nil {
			f.httpClient = c
		}
	}
}

// WithLogger attaches loggers at construction.
func WithLogger(loggers ...types.Logger) types.Option[*Feed] {
	return func(f *Feed) {
		f.ConnectLogger(loggers...)
	}
}
