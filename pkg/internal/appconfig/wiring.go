package appconfig

import (
	"github.com/mtlab/wfirma-go/pkg/internal/client"
	"github.com/mtlab/wfirma-go/pkg/internal/types"
)

// ClientOptions converts the API section into client options. Only set
// values become options, so the client's own defaults stay in charge.
func (c APIConfig) ClientOptions() []types.Option[*client.Client] {
	var opts []types.Option[*client.Client]
	if c.BaseURL != "" {
		opts = append(opts, client.WithBaseURL(c.BaseURL))
	}
	if c.CompanyID != "" {
		opts = append(opts, client.WithCompanyID(c.CompanyID))
	}
	if c.OAuth2Token != "" {
		opts = append(opts, client.WithOAuth2Token(c.OAuth2Token))
	}
	if c.AccessKey != "" || c.SecretKey != "" || c.AppKey != "" {
		opts = append(opts, client.WithAPIKeys(c.AccessKey, c.SecretKey, c.AppKey))
	}
	return opts
}
