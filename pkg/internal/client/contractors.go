package client

import (
	"context"
	"net/http"

	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

const moduleContractors = "contractors"

// ContractorsService covers the contractors module.
type ContractorsService struct {
	client *Client
}

// Add creates a contractor from flat fields.
func (s *ContractorsService) Add(ctx context.Context, fields []xmlcodec.Field) (xmlcodec.Map, error) {
	payload, err := xmlcodec.EncodeRecord(moduleContractors, "contractor", fields)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/contractors/add", nil, payload)
}

// Get fetches one contractor by id.
func (s *ContractorsService) Get(ctx context.Context, contractorID string) (xmlcodec.Map, error) {
	return s.client.do(ctx, http.MethodGet, "/contractors/get/"+contractorID, nil, nil)
}

// Edit updates contractor fields.
func (s *ContractorsService) Edit(ctx context.Context, contractorID string, fields []xmlcodec.Field) (xmlcodec.Map, error) {
	payload, err := xmlcodec.EncodeRecord(moduleContractors, "contractor", fields)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/contractors/edit/"+contractorID, nil, payload)
}

// Find runs a contractor query. A nil body sends an empty parameters element,
// which the API answers with the first page.
func (s *ContractorsService) Find(ctx context.Context, body xmlcodec.RequestBody) (xmlcodec.Map, error) {
	if body == nil {
		body = xmlcodec.FindParams{}
	}
	payload, err := body.MarshalBody(moduleContractors)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/contractors/find", nil, payload)
}
