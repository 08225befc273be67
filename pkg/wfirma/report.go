package wfirma

import (
	"io"

	"github.com/mtlab/wfirma-go/pkg/internal/report"
)

// Reporting types built from decoded invoice records.
type (
	Invoice     = report.Invoice
	Totals      = report.Totals
	GroupTotals = report.GroupTotals
	Summary     = report.Summary
	Report      = report.Report
	Page        = report.Page
)

const (
	DefaultQueryLimit = report.DefaultQueryLimit
	DefaultPerPage    = report.DefaultPerPage
)

// Sort keys accepted by SortInvoices, matching the dashboard columns.
const (
	SortByNumber      = report.SortByNumber
	SortByDate        = report.SortByDate
	SortByContractor  = report.SortByContractor
	SortByNetto       = report.SortByNetto
	SortByTax         = report.SortByTax
	SortByBrutto      = report.SortByBrutto
	SortByPaid        = report.SortByPaid
	SortByPaymentDate = report.SortByPaymentDate
	SortByStatus      = report.SortByStatus
)

// DateRange resolves year, month and day into an inclusive period.
func DateRange(year, month, day int) (from, to string) {
	return report.DateRange(year, month, day)
}

// PeriodQuery builds the raw find body selecting invoices issued in [from, to].
func PeriodQuery(from, to string, limit int) Raw {
	return report.PeriodQuery(from, to, limit)
}

// CollectInvoices pulls the invoice records out of a decoded find response.
func CollectInvoices(doc Map) []Map {
	return report.CollectInvoices(doc)
}

// InvoiceRows converts a decoded find response straight into typed rows.
func InvoiceRows(doc Map) []Invoice {
	return report.Rows(doc)
}

// InvoiceFromRecord lifts one decoded record into a typed row.
func InvoiceFromRecord(rec Map) Invoice {
	return report.FromRecord(rec)
}

// SortInvoices orders rows in place by one of the sort keys.
func SortInvoices(rows []Invoice, key, order string) {
	report.Sort(rows, key, order)
}

// FilterByNumbers keeps the rows whose full number is in numbers.
func FilterByNumbers(rows []Invoice, numbers []string) []Invoice {
	return report.FilterByNumbers(rows, numbers)
}

// ParseNumbers splits a comma separated invoice number list.
func ParseNumbers(param string) []string {
	return report.ParseNumbers(param)
}

// Paginate slices rows into one page of results.
func Paginate(rows []Invoice, page, perPage int) Page {
	return report.Paginate(rows, page, perPage)
}

// SumInvoices accumulates the money columns over rows.
func SumInvoices(rows []Invoice) Totals {
	return report.Sum(rows)
}

// BuildReport aggregates rows into period totals, groupings and summary.
func BuildReport(from, to string, rows []Invoice) Report {
	return report.BuildReport(from, to, rows)
}

// FormatCurrency renders an amount with Polish digit grouping.
func FormatCurrency(amount float64) string {
	return report.FormatCurrency(amount)
}

// WriteCSV writes rows as CSV.
func WriteCSV(w io.Writer, rows []Invoice) error {
	return report.WriteCSV(w, rows)
}

// WriteParquet writes rows as a parquet file.
func WriteParquet(w io.Writer, rows []Invoice) error {
	return report.WriteParquet(w, rows)
}
