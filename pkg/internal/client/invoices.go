package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

const moduleInvoices = "invoices"

// InvoicesService covers the invoices module.
type InvoicesService struct {
	client *Client
}

// Get fetches one invoice by id.
func (s *InvoicesService) Get(ctx context.Context, invoiceID string) (xmlcodec.Map, error) {
	return s.client.do(ctx, http.MethodGet, "/invoices/get/"+invoiceID, nil, nil)
}

// Add creates an invoice from flat record fields.
func (s *InvoicesService) Add(ctx context.Context, fields []xmlcodec.Field) (xmlcodec.Map, error) {
	payload, err := xmlcodec.EncodeRecord(moduleInvoices, "invoice", fields)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/invoices/add", nil, payload)
}

// AddXML creates an invoice from a caller-built document, for anything the
// flat record shape cannot express (positions, series, custom VAT content).
func (s *InvoicesService) AddXML(ctx context.Context, raw []byte) (xmlcodec.Map, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("invoices add: empty XML body")
	}
	payload, err := xmlcodec.Raw(raw).MarshalBody(moduleInvoices)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/invoices/add", nil, payload)
}

// Download requests an invoice rendering. With no parameters the whole
// document is requested (page "all").
func (s *InvoicesService) Download(ctx context.Context, invoiceID string, params ...xmlcodec.Field) (xmlcodec.Map, error) {
	if len(params) == 0 {
		params = []xmlcodec.Field{{Name: "page", Value: "all"}}
	}
	payload, err := xmlcodec.EncodeActionParams(moduleInvoices, params)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/invoices/download/"+invoiceID, nil, payload)
}

// Send emails an invoice. Parameters carry the recipient, subject, page
// selection and whatever else the action accepts.
func (s *InvoicesService) Send(ctx context.Context, invoiceID string, params ...xmlcodec.Field) (xmlcodec.Map, error) {
	payload, err := xmlcodec.EncodeActionParams(moduleInvoices, params)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/invoices/send/"+invoiceID, nil, payload)
}

// Find runs an invoice query. Paging queries fit FindParams; conditions and
// ordering need a Raw parameters document.
func (s *InvoicesService) Find(ctx context.Context, body xmlcodec.RequestBody) (xmlcodec.Map, error) {
	if body == nil {
		body = xmlcodec.FindParams{}
	}
	payload, err := body.MarshalBody(moduleInvoices)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, http.MethodPost, "/invoices/find", nil, payload)
}

// FindBasic runs a plain paged query. Zero page or limit falls back to the
// API defaults; fields narrow the returned columns.
func (s *InvoicesService) FindBasic(ctx context.Context, page, limit int, fields ...string) (xmlcodec.Map, error) {
	return s.Find(ctx, xmlcodec.FindParams{Page: page, Limit: limit, Fields: fields})
}
