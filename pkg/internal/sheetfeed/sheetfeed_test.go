package sheetfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mtlab/wfirma-go/pkg/internal/report"
)

func TestFetchParsesPublishedCSV(t *testing.T) {
	body := "\xEF\xBB\xBF" +
		"invoice_number,due_date,amount,currency,note\n" +
		"FV 1/2024,2024-05-19,123.00,PLN,retainer\n" +
		"\n" +
		"only a note\n" +
		"FV 2/2024,2024-06-02,\"1 234,56\",EUR\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	feed := NewFeed(WithURL(srv.URL))
	got, err := feed.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 payments, got %d: %+v", len(got), got)
	}
	if got[0].InvoiceNumber != "FV 1/2024" || got[0].Amount != 123 || got[0].Note != "retainer" {
		t.Fatalf("unexpected first payment: %+v", got[0])
	}
	if got[1].Amount != 1234.56 || got[1].Currency != "EUR" || got[1].Note != "" {
		t.Fatalf("unexpected second payment: %+v", got[1])
	}
}

func TestFetchRejectsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	feed := NewFeed(WithURL(srv.URL))
	if _, err := feed.Fetch(context.Background()); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected a status error, got %v", err)
	}
}

func TestFetchHonorsTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	feed := NewFeed(WithURL(srv.URL), WithTimeout(50*time.Millisecond))
	start := time.Now()
	if _, err := feed.Fetch(context.Background()); err == nil {
		t.Fatal("expected a timeout error")
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("timeout did not bound the download")
	}
}

func TestFetchRequiresURL(t *testing.T) {
	if _, err := NewFeed().Fetch(context.Background()); err == nil {
		t.Fatal("expected an error without a url")
	}
}

func TestParsePayments_SkipsJunkRows(t *testing.T) {
	in := "invoice_number,due_date,amount\n" +
		"FV 1/2024,2024-05-19,100.00\n" +
		"FV 2/2024,2024-05-20,not-a-number\n" +
		",2024-05-21,50.00\n"
	got, err := ParsePayments(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(got) != 1 || got[0].InvoiceNumber != "FV 1/2024" {
		t.Fatalf("expected only the clean row, got %+v", got)
	}
	if got[0].Currency != "PLN" {
		t.Fatalf("expected PLN default, got %q", got[0].Currency)
	}
}

func TestReconcile(t *testing.T) {
	expected := []ExpectedPayment{
		{InvoiceNumber: "FV 1/2024", Amount: 123.00},
		{InvoiceNumber: "FV 2/2024", Amount: 250.00},
		{InvoiceNumber: "FV 9/2024", Amount: 75.00},
	}
	invoices := []report.Invoice{
		{FullNumber: "FV 1/2024", Brutto: 123.004},
		{FullNumber: "FV 2/2024", Brutto: 246.00},
	}

	got := Reconcile(expected, invoices)
	if len(got) != 2 {
		t.Fatalf("expected 2 discrepancies, got %+v", got)
	}
	if got[0].Kind != KindAmountMismatch || got[0].InvoiceNumber != "FV 2/2024" || got[0].Actual != 246 {
		t.Fatalf("unexpected first discrepancy: %+v", got[0])
	}
	if got[1].Kind != KindMissing || got[1].InvoiceNumber != "FV 9/2024" {
		t.Fatalf("unexpected second discrepancy: %+v", got[1])
	}
}

func TestReconcile_CleanSheet(t *testing.T) {
	expected := []ExpectedPayment{{InvoiceNumber: "FV 1/2024", Amount: 123}}
	invoices := []report.Invoice{{FullNumber: "FV 1/2024", Brutto: 123}}
	if got := Reconcile(expected, invoices); len(got) != 0 {
		t.Fatalf("expected no discrepancies, got %+v", got)
	}
}
