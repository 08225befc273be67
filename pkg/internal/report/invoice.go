// package report turns decoded invoice documents into rows, ranges, sorted
// and paginated views, period aggregates and file exports. It owns the
// arithmetic the dashboard and the CLI share; fetching stays with the
// client package.
package report

import (
	"strconv"

	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

// Invoice is one materialized invoice row. String fields keep the vendor's
// textual form (dates stay YYYY-MM-DD) so ordering and display need no
// reparsing; money fields are parsed once here.
type Invoice struct {
	ID           string  `json:"id"`
	FullNumber   string  `json:"full_number"`
	Date         string  `json:"date"`
	PaymentDate  string  `json:"payment_date"`
	PaymentState string  `json:"payment_state"`
	Currency     string  `json:"currency"`
	Contractor   string  `json:"contractor"`
	Netto        float64 `json:"netto"`
	Tax          float64 `json:"tax"`
	Brutto       float64 `json:"brutto"`
	AlreadyPaid  float64 `json:"already_paid"`
	ExchangeRate float64 `json:"exchange_rate"`
}

// Financials extracts netto, brutto and tax from one invoice record. The
// VAT breakdown row wins when present; repeated breakdown rows contribute
// their first entry. Invoices without a breakdown carry the amounts
// directly.
func Financials(rec xmlcodec.Map) (netto, brutto, tax float64) {
	if rows := rec.Records("vat_contents", "vat_content"); len(rows) > 0 {
		vc := rows[0]
		return amount(vc.Text("netto")), amount(vc.Text("brutto")), amount(vc.Text("tax"))
	}
	return amount(rec.Text("netto")), amount(rec.Text("brutto")), amount(rec.Text("tax"))
}

// FromRecord materializes one decoded invoice record.
func FromRecord(rec xmlcodec.Map) Invoice {
	netto, brutto, tax := Financials(rec)
	return Invoice{
		ID:           rec.Text("id"),
		FullNumber:   rec.Text("fullnumber"),
		Date:         rec.Text("date"),
		PaymentDate:  rec.Text("paymentdate"),
		PaymentState: rec.Text("paymentstate"),
		Currency:     currencyOrDefault(rec.Text("currency")),
		Contractor:   rec.Text("contractor", "altname"),
		Netto:        netto,
		Tax:          tax,
		Brutto:       brutto,
		AlreadyPaid:  amount(rec.Text("alreadypaid")),
		ExchangeRate: exchangeRate(rec.Text("price_currency_exchange")),
	}
}

// CollectInvoices pulls the invoice records out of a find response,
// normalizing the absent, single and repeated shapes into one slice.
func CollectInvoices(doc xmlcodec.Map) []xmlcodec.Map {
	return doc.Records("invoices", "invoice")
}

// Rows materializes every invoice record in a find response.
func Rows(doc xmlcodec.Map) []Invoice {
	recs := CollectInvoices(doc)
	rows := make([]Invoice, len(recs))
	for i, rec := range recs {
		rows[i] = FromRecord(rec)
	}
	return rows
}

// Paid is the settled amount weighted by the currency exchange rate.
func (i Invoice) Paid() float64 {
	return i.AlreadyPaid * i.ExchangeRate
}

// Month is the YYYY-MM bucket of the issue date.
func (i Invoice) Month() string {
	if len(i.Date) < 7 {
		return i.Date
	}
	return i.Date[:7]
}

func amount(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func exchangeRate(s string) float64 {
	if s == "" {
		return 1
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1
	}
	return v
}

func currencyOrDefault(c string) string {
	if c == "" {
		return "PLN"
	}
	return c
}
