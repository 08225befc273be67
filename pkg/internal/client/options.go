package client

import (
	"time"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(baseURL string) types.Option[*Client] {
	return func(c *Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithCompanyID sets the company context sent with every request.
func WithCompanyID(companyID string) types.Option[*Client] {
	return func(c *Client) {
		c.SetCompanyID(companyID)
	}
}

// WithOAuth2Token puts the client in bearer mode.
func WithOAuth2Token(token string) types.Option[*Client] {
	return func(c *Client) {
		c.SetBearerToken(token)
	}
}

// WithAPIKeys puts the client in API key mode.
func WithAPIKeys(accessKey, secretKey, appKey string) types.Option[*Client] {
	return func(c *Client) {
		c.SetAPIKeys(accessKey, secretKey, appKey)
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) types.Option[*Client] {
	return func(c *Client) {
		c.SetTimeout(timeout)
	}
}

// WithTransport replaces the HTTP transport.
func WithTransport(transport Transport) types.Option[*Client] {
	return func(c *Client) {
		c.SetTransport(transport)
	}
}

// WithHeader adds a static header to outgoing requests.
func WithHeader(key, value string) types.Option[*Client] {
	return func(c *Client) {
		c.AddHeader(key, value)
	}
}

// WithLogger attaches loggers to the client.
func WithLogger(l ...types.Logger) types.Option[*Client] {
	return func(c *Client) {
		c.ConnectLogger(l...)
	}
}
