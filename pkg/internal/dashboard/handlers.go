package dashboard

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/mtlab/wfirma-go/pkg/internal/report"
	"github.com/mtlab/wfirma-go/pkg/internal/types"
	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)
	rows, _, _, ok := s.fetchRows(w, r, q)
	if !ok {
		return
	}

	rows = report.FilterByNumbers(rows, report.ParseNumbers(q.InvoiceNumbers))
	report.Sort(rows, q.SortBy, q.SortOrder)

	s.render(w, listTemplate, listPage{
		Year:           q.Year,
		Month:          q.Month,
		Day:            q.Day,
		SortBy:         q.SortBy,
		SortOrder:      q.SortOrder,
		InvoiceNumbers: q.InvoiceNumbers,
		Totals:         report.Sum(rows),
		Page:           report.Paginate(rows, q.Page, q.PerPage),
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)
	rows, from, to, ok := s.fetchRows(w, r, q)
	if !ok {
		return
	}
	s.render(w, reportTemplate, reportPage{
		Year:   q.Year,
		Month:  q.Month,
		Day:    q.Day,
		Report: report.BuildReport(from, to, rows),
	})
}

func (s *Server) handleAPIInvoices(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)
	from, to := report.DateRange(q.Year, q.Month, q.Day)
	records, err := s.source.InvoicesByPeriod(r.Context(), from, to)
	if err != nil {
		s.notifyFetchError(r, err)
		s.writeJSON(w, http.StatusBadGateway, map[string]string{"error": "invoice fetch failed"})
		return
	}
	if records == nil {
		records = []xmlcodec.Map{}
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(records),
		"invoices": records,
	})
}

func (s *Server) handleAPIReport(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)
	from, to := report.DateRange(q.Year, q.Month, q.Day)
	records, err := s.source.InvoicesByPeriod(r.Context(), from, to)
	if err != nil {
		s.notifyFetchError(r, err)
		s.writeJSON(w, http.StatusBadGateway, map[string]string{"error": "invoice fetch failed"})
		return
	}
	s.writeJSON(w, http.StatusOK, report.BuildReport(from, to, invoiceRows(records)))
}

// fetchRows loads and materializes the period's invoices for the HTML
// views, writing the error response itself when the upstream call fails.
func (s *Server) fetchRows(w http.ResponseWriter, r *http.Request, q listQuery) (rows []report.Invoice, from, to string, ok bool) {
	from, to = report.DateRange(q.Year, q.Month, q.Day)
	records, err := s.source.InvoicesByPeriod(r.Context(), from, to)
	if err != nil {
		s.notifyFetchError(r, err)
		http.Error(w, "invoice fetch failed", http.StatusBadGateway)
		return nil, "", "", false
	}
	return invoiceRows(records), from, to, true
}

func invoiceRows(records []xmlcodec.Map) []report.Invoice {
	rows := make([]report.Invoice, 0, len(records))
	for _, rec := range records {
		rows = append(rows, report.FromRecord(rec))
	}
	return rows
}

func (s *Server) notifyFetchError(r *http.Request, err error) {
	s.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, event: FetchInvoices, path: %s, request_id: %s, error: %v => Invoice fetch failed", s.componentMetadata, r.URL.Path, RequestID(r.Context()), err)
}

// render executes into a buffer first so a template error never sends
// half a page.
func (s *Server) render(w http.ResponseWriter, tpl *template.Template, data interface{}) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		s.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, event: Render, template: %s, error: %v => Template render failed", s.componentMetadata, tpl.Name(), err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, event: WriteJSON, error: %v => Response write failed", s.componentMetadata, err)
	}
}
