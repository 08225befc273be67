package client

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
	"github.com/mtlab/wfirma-go/pkg/internal/utils"
)

// DefaultBaseURL is the production wFirma API endpoint.
const DefaultBaseURL = "https://api2.wfirma.pl"

// DefaultTimeout bounds every request unless overridden.
const DefaultTimeout = 30 * time.Second

// authConfig holds one of the two supported credential modes. A bearer token
// takes precedence when both are set.
type authConfig struct {
	bearer    string
	accessKey string
	secretKey string
	appKey    string
}

func (a authConfig) bearerMode() bool {
	return a.bearer != ""
}

func (a authConfig) keyTripleComplete() bool {
	return a.accessKey != "" && a.secretKey != "" && a.appKey != ""
}

// Client talks to the wFirma XML API. Construct it with NewClient and reach
// the API modules through the service fields.
type Client struct {
	componentMetadata types.ComponentMetadata
	configLock        sync.Mutex
	baseURL           string
	companyID         string
	auth              authConfig
	headers           map[string]string
	timeout           time.Duration
	transport         Transport
	loggers           []types.Logger
	loggersLock       sync.Mutex

	Invoices        *InvoicesService
	Contractors     *ContractorsService
	CompanyAccounts *CompanyAccountsService
}

// NewClient builds a Client from options. It fails with types.AuthError when
// neither an OAuth2 token nor a complete accessKey/secretKey/appKey triple is
// configured; no request is ever attempted without working credentials.
func NewClient(options ...types.Option[*Client]) (*Client, error) {
	c := &Client{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "WFIRMA_CLIENT",
		},
		baseURL:   DefaultBaseURL,
		headers:   make(map[string]string),
		timeout:   DefaultTimeout,
		transport: &http.Client{},
		loggers:   make([]types.Logger, 0),
	}

	for _, opt := range options {
		opt(c)
	}

	if !c.auth.bearerMode() && !c.auth.keyTripleComplete() {
		return nil, &types.AuthError{
			Message: "provide either an OAuth2 token or the accessKey/secretKey/appKey triple",
		}
	}

	c.Invoices = &InvoicesService{client: c}
	c.Contractors = &ContractorsService{client: c}
	c.CompanyAccounts = &CompanyAccountsService{client: c}

	return c, nil
}

// SetBaseURL overrides the API endpoint. A trailing slash is dropped so path
// joining stays predictable.
func (c *Client) SetBaseURL(baseURL string) {
	c.configLock.Lock()
	c.baseURL = strings.TrimRight(baseURL, "/")
	c.configLock.Unlock()
}

// SetCompanyID sets the company context sent with every request.
func (c *Client) SetCompanyID(companyID string) {
	c.configLock.Lock()
	c.companyID = companyID
	c.configLock.Unlock()
}

// SetBearerToken switches the client to OAuth2 bearer mode.
func (c *Client) SetBearerToken(token string) {
	c.configLock.Lock()
	c.auth.bearer = token
	c.configLock.Unlock()
}

// SetAPIKeys switches the client to API key mode.
func (c *Client) SetAPIKeys(accessKey, secretKey, appKey string) {
	c.configLock.Lock()
	c.auth.accessKey = accessKey
	c.auth.secretKey = secretKey
	c.auth.appKey = appKey
	c.configLock.Unlock()
}

// SetTimeout updates the per-request timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.configLock.Lock()
	c.timeout = timeout
	c.configLock.Unlock()
}

// SetTransport replaces the HTTP transport. Tests use this to stub the wire.
func (c *Client) SetTransport(transport Transport) {
	if transport == nil {
		return
	}
	c.configLock.Lock()
	c.transport = transport
	c.configLock.Unlock()
}

// AddHeader adds a static header to outgoing requests.
func (c *Client) AddHeader(key, value string) {
	if err := validateHeaderValue(value); err != nil {
		c.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, event: AddHeader, key: %s, error: %v => Rejected header value", c.componentMetadata, key, err)
		return
	}
	c.configLock.Lock()
	if c.headers == nil {
		c.headers = make(map[string]string)
	}
	c.headers[key] = value
	c.configLock.Unlock()
}
