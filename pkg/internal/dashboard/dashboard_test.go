package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"nhooyr.io/websocket"

	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

type stubSource struct {
	records []xmlcodec.Map
	err     error

	lastFrom string
	lastTo   string
}

func (s *stubSource) InvoicesByPeriod(ctx context.Context, from, to string) ([]xmlcodec.Map, error) {
	s.lastFrom, s.lastTo = from, to
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func sampleRecords() []xmlcodec.Map {
	return []xmlcodec.Map{
		{
			"id": "1", "fullnumber": "FV 1/2024", "date": "2024-05-10",
			"paymentdate": "2024-05-24", "paymentstate": "paid", "currency": "PLN",
			"netto": "100.00", "brutto": "123.00", "tax": "23.00",
			"alreadypaid": "123.00",
			"contractor":  xmlcodec.Map{"altname": "Acme"},
		},
		{
			"id": "2", "fullnumber": "FV 2/2024", "date": "2024-05-20",
			"paymentdate": "2024-06-03", "paymentstate": "unpaid", "currency": "PLN",
			"netto": "200.00", "brutto": "246.00", "tax": "46.00",
			"alreadypaid": "0.00",
			"contractor":  xmlcodec.Map{"altname": "Beta"},
		},
	}
}

func newTestServer(t *testing.T, source InvoiceSource) (*Server, *httptest.Server) {
	t.Helper()
	srv, err := NewServer(WithSource(source), WithPollInterval(0))
	if err != nil {
		t.Fatalf("constructor error: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func getBody(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("body read error: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestIndexRendersInvoiceTable(t *testing.T) {
	stub := &stubSource{records: sampleRecords()}
	_, ts := newTestServer(t, stub)

	status, body := getBody(t, ts.URL+"/?year=2024&month=5")
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	if stub.lastFrom != "2024-05-01" || stub.lastTo != "2024-05-31" {
		t.Fatalf("unexpected period %s..%s", stub.lastFrom, stub.lastTo)
	}
	for _, want := range []string{"FV 1/2024", "FV 2/2024", "Acme", "Beta", "123,00", "246,00"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
	// Totals row covers the whole filtered set.
	if !strings.Contains(body, "Razem (2)") || !strings.Contains(body, "369,00") {
		t.Fatal("expected the totals row")
	}
}

func TestIndexSortsDescending(t *testing.T) {
	stub := &stubSource{records: sampleRecords()}
	_, ts := newTestServer(t, stub)

	status, body := getBody(t, ts.URL+"/?year=2024&sort_by=brutto&sort_order=desc")
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	first := strings.Index(body, "FV 2/2024")
	second := strings.Index(body, "FV 1/2024")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected the larger invoice first, positions %d/%d", first, second)
	}
}

func TestIndexFiltersInvoiceNumbers(t *testing.T) {
	stub := &stubSource{records: sampleRecords()}
	_, ts := newTestServer(t, stub)

	q := url.Values{}
	q.Set("year", "2024")
	q.Set("invoice_numbers", "FV 2/2024")
	status, body := getBody(t, ts.URL+"/?"+q.Encode())
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	if !strings.Contains(body, "Razem (1)") {
		t.Fatal("expected one invoice after filtering")
	}
	if strings.Contains(body, "<td>FV 1/2024</td>") {
		t.Fatal("expected the other invoice to be filtered out")
	}
}

func TestIndexUpstreamFailure(t *testing.T) {
	stub := &stubSource{err: errors.New("vendor unavailable")}
	_, ts := newTestServer(t, stub)

	status, _ := getBody(t, ts.URL+"/")
	if status != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", status)
	}
}

func TestAPIInvoices(t *testing.T) {
	stub := &stubSource{records: sampleRecords()}
	_, ts := newTestServer(t, stub)

	status, body := getBody(t, ts.URL+"/api/invoices?year=2024&month=5&day=10")
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	if stub.lastFrom != "2024-05-10" || stub.lastTo != "2024-05-10" {
		t.Fatalf("unexpected period %s..%s", stub.lastFrom, stub.lastTo)
	}

	var payload struct {
		Count    int                      `json:"count"`
		Invoices []map[string]interface{} `json:"invoices"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if payload.Count != 2 || len(payload.Invoices) != 2 {
		t.Fatalf("unexpected payload %d/%d", payload.Count, len(payload.Invoices))
	}
	if payload.Invoices[0]["fullnumber"] != "FV 1/2024" {
		t.Fatalf("unexpected first invoice %v", payload.Invoices[0])
	}
}

func TestAPIInvoicesEmptyList(t *testing.T) {
	stub := &stubSource{}
	_, ts := newTestServer(t, stub)

	status, body := getBody(t, ts.URL+"/api/invoices?year=2024")
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	if !strings.Contains(body, `"invoices":[]`) {
		t.Fatalf("expected an empty list, got %s", body)
	}
}

func TestAPIReport(t *testing.T) {
	stub := &stubSource{records: sampleRecords()}
	_, ts := newTestServer(t, stub)

	status, body := getBody(t, ts.URL+"/api/report?year=2024&month=5")
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}

	var payload struct {
		From    string `json:"from"`
		To      string `json:"to"`
		Summary struct {
			Count       int     `json:"count"`
			Brutto      float64 `json:"brutto"`
			Paid        float64 `json:"paid"`
			Outstanding float64 `json:"outstanding"`
		} `json:"summary"`
		ByCurrency []struct {
			Key   string `json:"key"`
			Count int    `json:"count"`
		} `json:"by_currency"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if payload.From != "2024-05-01" || payload.To != "2024-05-31" {
		t.Fatalf("unexpected period %s..%s", payload.From, payload.To)
	}
	if payload.Summary.Count != 2 || payload.Summary.Brutto != 369 {
		t.Fatalf("unexpected summary %+v", payload.Summary)
	}
	if payload.Summary.Paid != 123 || payload.Summary.Outstanding != 246 {
		t.Fatalf("unexpected settlement split %+v", payload.Summary)
	}
	if len(payload.ByCurrency) != 1 || payload.ByCurrency[0].Key != "PLN" {
		t.Fatalf("unexpected currency buckets %+v", payload.ByCurrency)
	}
}

func TestReportPageRenders(t *testing.T) {
	stub := &stubSource{records: sampleRecords()}
	_, ts := newTestServer(t, stub)

	status, body := getBody(t, ts.URL+"/report?year=2024&month=5")
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	for _, want := range []string{"2024-05-01", "2024-05-31", "Podsumowanie", "Acme", "Beta", "PLN", "2024-05"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	stub := &stubSource{}
	_, ts := newTestServer(t, stub)

	resp, err := http.Get(ts.URL + "/api/invoices")
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	resp.Body.Close()
	if resp.Header.Get("X-Request-Id") == "" {
		t.Fatal("expected a generated request id")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/invoices", nil)
	req.Header.Set("X-Request-Id", "caller-id-1")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("X-Request-Id"); got != "caller-id-1" {
		t.Fatalf("expected the caller id echoed, got %q", got)
	}
}

func TestWebSocketPushesRefresh(t *testing.T) {
	stub := &stubSource{}
	srv, ts := newTestServer(t, stub)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		tick := time.NewTicker(10 * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tick.C:
				srv.hub.broadcast("refresh")
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	var event wsEvent
	if err := json.Unmarshal(data, &event); err != nil {
		t.Fatalf("event is not JSON: %v", err)
	}
	if event.Event != "refresh" {
		t.Fatalf("unexpected event %q", event.Event)
	}
}

func TestHubDropsSlowSubscribers(t *testing.T) {
	h := newHub()
	ch := h.subscribe()
	defer h.unsubscribe(ch)

	delivered := 0
	for i := 0; i < 10; i++ {
		delivered += h.broadcast("refresh")
	}
	if delivered != cap(ch) {
		t.Fatalf("expected delivery to stop at the buffer, got %d", delivered)
	}
}

func TestParseListQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?year=2023&month=7&day=4&sort_by=netto&sort_order=desc&page=3&per_page=50&invoice_numbers=FV+1,FV+2", nil)
	q := parseListQuery(r)
	if q.Year != 2023 || q.Month != 7 || q.Day != 4 {
		t.Fatalf("unexpected period %d-%d-%d", q.Year, q.Month, q.Day)
	}
	if q.SortBy != "netto" || q.SortOrder != "desc" {
		t.Fatalf("unexpected sort %s/%s", q.SortBy, q.SortOrder)
	}
	if q.Page != 3 || q.PerPage != 50 {
		t.Fatalf("unexpected paging %d/%d", q.Page, q.PerPage)
	}
	if q.InvoiceNumbers != "FV 1,FV 2" {
		t.Fatalf("unexpected numbers %q", q.InvoiceNumbers)
	}
}

func TestParseListQueryDefaultsAndJunk(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	q := parseListQuery(r)
	if q.Year != time.Now().Year() || q.Month != 0 || q.Day != 0 {
		t.Fatalf("unexpected defaults %d-%d-%d", q.Year, q.Month, q.Day)
	}
	if q.SortOrder != "asc" || q.Page != 1 || q.PerPage != 20 {
		t.Fatalf("unexpected defaults %s/%d/%d", q.SortOrder, q.Page, q.PerPage)
	}

	// One junk date part drops the whole requested period.
	r = httptest.NewRequest(http.MethodGet, "/?year=2023&month=may", nil)
	q = parseListQuery(r)
	if q.Year != time.Now().Year() || q.Month != 0 {
		t.Fatalf("expected the default period, got %d-%d", q.Year, q.Month)
	}
}
