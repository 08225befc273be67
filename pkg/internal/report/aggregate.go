package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Totals accumulates the money columns over a group of invoices.
type Totals struct {
	Count  int     `json:"count"`
	Netto  float64 `json:"netto"`
	Tax    float64 `json:"tax"`
	Brutto float64 `json:"brutto"`
}

// GroupTotals is one aggregation bucket keyed by contractor, currency or
// month.
type GroupTotals struct {
	Key string `json:"key"`
	Totals
}

// Summary describes the whole period. Paid and Outstanding are document
// currency sums; the exchange-weighted settled amount stays a sort key
// only. StdDevBrutto needs at least two invoices and is zero below that.
type Summary struct {
	Totals
	Paid         float64 `json:"paid"`
	Outstanding  float64 `json:"outstanding"`
	MeanBrutto   float64 `json:"mean_brutto"`
	StdDevBrutto float64 `json:"stddev_brutto"`
}

// Report is the aggregate view of one invoice period.
type Report struct {
	From         string        `json:"from"`
	To           string        `json:"to"`
	Invoices     []Invoice     `json:"invoices"`
	ByContractor []GroupTotals `json:"by_contractor"`
	ByCurrency   []GroupTotals `json:"by_currency"`
	ByMonth      []GroupTotals `json:"by_month"`
	Summary      Summary       `json:"summary"`
}

// BuildReport aggregates rows into per-contractor, per-currency and
// per-month totals plus an overall summary. Buckets come back sorted by
// key so rendered tables are stable.
func BuildReport(from, to string, rows []Invoice) Report {
	return Report{
		From:         from,
		To:           to,
		Invoices:     rows,
		ByContractor: groupTotals(rows, func(inv Invoice) string { return inv.Contractor }),
		ByCurrency:   groupTotals(rows, func(inv Invoice) string { return inv.Currency }),
		ByMonth:      groupTotals(rows, func(inv Invoice) string { return inv.Month() }),
		Summary:      summarize(rows),
	}
}

// Sum accumulates the money columns over rows.
func Sum(rows []Invoice) Totals {
	var t Totals
	for _, inv := range rows {
		t.Count++
		t.Netto += inv.Netto
		t.Tax += inv.Tax
		t.Brutto += inv.Brutto
	}
	return t
}

func groupTotals(rows []Invoice, key func(Invoice) string) []GroupTotals {
	buckets := make(map[string]*GroupTotals)
	for _, inv := range rows {
		k := key(inv)
		b, ok := buckets[k]
		if !ok {
			b = &GroupTotals{Key: k}
			buckets[k] = b
		}
		b.Count++
		b.Netto += inv.Netto
		b.Tax += inv.Tax
		b.Brutto += inv.Brutto
	}
	out := make([]GroupTotals, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func summarize(rows []Invoice) Summary {
	var s Summary
	brutto := make([]float64, 0, len(rows))
	for _, inv := range rows {
		s.Count++
		s.Netto += inv.Netto
		s.Tax += inv.Tax
		s.Brutto += inv.Brutto
		s.Paid += inv.AlreadyPaid
		brutto = append(brutto, inv.Brutto)
	}
	s.Outstanding = s.Brutto - s.Paid
	if len(brutto) > 0 {
		s.MeanBrutto = stat.Mean(brutto, nil)
	}
	if len(brutto) > 1 {
		s.StdDevBrutto = stat.StdDev(brutto, nil)
	}
	return s
}
