package sheetfeed

import (
	"math"

	"github.com/mtlab/wfirma-go/pkg/internal/report"
)

// Discrepancy kinds.
const (
	KindMissing        = "missing"
	KindAmountMismatch = "amount_mismatch"
)

// Sub-grosz differences are rounding noise, not discrepancies.
const amountTolerance = 0.005

// Discrepancy is one reconciliation finding. Actual is zero for missing
// invoices.
type Discrepancy struct {
	Kind          string
	InvoiceNumber string
	Expected      float64
	Actual        float64
}

// Reconcile checks expected payments against fetched invoices by full
// number, comparing the expected amount with the invoice brutto.
func Reconcile(expected []ExpectedPayment, invoices []report.Invoice) []Discrepancy {
	byNumber := make(map[string]report.Invoice, len(invoices))
	for _, inv := range invoices {
		byNumber[inv.FullNumber] = inv
	}

	var out []Discrepancy
	for _, p := range expected {
		inv, ok := byNumber[p.InvoiceNumber]
		if !ok {
			out = append(out, Discrepancy{
				Kind:          KindMissing,
				InvoiceNumber: p.InvoiceNumber,
				Expected:      p.Amount,
			})
			continue
		}
		if math.Abs(inv.Brutto-p.Amount) > amountTolerance {
			out = append(out, Discrepancy{
				Kind:          KindAmountMismatch,
				InvoiceNumber: p.InvoiceNumber,
				Expected:      p.Amount,
				Actual:        inv.Brutto,
			})
		}
	}
	return out
}
