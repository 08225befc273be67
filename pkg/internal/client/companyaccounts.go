package client

import (
	"context"
	"net/http"

	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

// CompanyAccountsService covers the company_accounts module.
type CompanyAccountsService struct {
	client *Client
}

// Find lists the company's bank accounts.
func (s *CompanyAccountsService) Find(ctx context.Context) (xmlcodec.Map, error) {
	return s.client.do(ctx, http.MethodGet, "/company_accounts/find", nil, nil)
}

// Get fetches one bank account by id.
func (s *CompanyAccountsService) Get(ctx context.Context, accountID string) (xmlcodec.Map, error) {
	return s.client.do(ctx, http.MethodGet, "/company_accounts/get/"+accountID, nil, nil)
}
