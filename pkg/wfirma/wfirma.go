// Package wfirma is the public surface of the module. It re-exports the
// internal packages with prefixed names so applications import one
// package: the API client, the XML codec, reporting, balance storage,
// document archival, event streaming, the dashboard and the logger.
package wfirma

import (
	"time"

	internalClient "github.com/mtlab/wfirma-go/pkg/internal/client"
	"github.com/mtlab/wfirma-go/pkg/internal/types"
)

// Option configures a component of type T.
type Option[T any] = types.Option[T]

// ComponentMetadata identifies a component in log lines.
type ComponentMetadata = types.ComponentMetadata

// Client talks to the wFirma XML API.
type Client = internalClient.Client

// Transport executes HTTP requests; tests stub it.
type Transport = internalClient.Transport

// InvoicesService exposes the invoices module.
type InvoicesService = internalClient.InvoicesService

// ContractorsService exposes the contractors module.
type ContractorsService = internalClient.ContractorsService

// CompanyAccountsService exposes the company_accounts module.
type CompanyAccountsService = internalClient.CompanyAccountsService

// Error types the client returns. Match with errors.As.
type (
	AuthError      = types.AuthError
	TransportError = types.TransportError
	ParseError     = types.ParseError
	APIError       = types.APIError
)

const DefaultBaseURL = internalClient.DefaultBaseURL

// NewClient builds an API client from options.
func NewClient(options ...Option[*Client]) (*Client, error) {
	return internalClient.NewClient(options...)
}

// ClientWithBaseURL overrides the API endpoint.
func ClientWithBaseURL(baseURL string) Option[*Client] {
	return internalClient.WithBaseURL(baseURL)
}

// ClientWithCompanyID sets the company context sent with every request.
func ClientWithCompanyID(companyID string) Option[*Client] {
	return internalClient.WithCompanyID(companyID)
}

// ClientWithOAuth2Token puts the client in bearer mode.
func ClientWithOAuth2Token(token string) Option[*Client] {
	return internalClient.WithOAuth2Token(token)
}

// ClientWithAPIKeys puts the client in API key mode.
func ClientWithAPIKeys(accessKey, secretKey, appKey string) Option[*Client] {
	return internalClient.WithAPIKeys(accessKey, secretKey, appKey)
}

// ClientWithTimeout sets the per-request timeout.
func ClientWithTimeout(timeout time.Duration) Option[*Client] {
	return internalClient.WithTimeout(timeout)
}

// ClientWithTransport replaces the HTTP transport.
func ClientWithTransport(transport Transport) Option[*Client] {
	return internalClient.WithTransport(transport)
}

// ClientWithHeader adds a static header to outgoing requests.
func ClientWithHeader(key, value string) Option[*Client] {
	return internalClient.WithHeader(key, value)
}

// ClientWithLogger attaches loggers to the client.
func ClientWithLogger(loggers ...Logger) Option[*Client] {
	return internalClient.WithLogger(loggers...)
}
