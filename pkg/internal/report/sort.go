package report

import "sort"

// Sort keys accepted by Sort, matching the dashboard column headers.
const (
	SortByNumber      = "number"
	SortByDate        = "date"
	SortByContractor  = "contractor"
	SortByNetto       = "netto"
	SortByTax         = "tax"
	SortByBrutto      = "brutto"
	SortByPaid        = "paid"
	SortByPaymentDate = "paymentdate"
	SortByStatus      = "status"
)

// Sort orders rows in place by one of the dashboard sort keys. Order is
// "asc" unless given as "desc". An unknown or empty key leaves the slice
// untouched.
func Sort(rows []Invoice, key, order string) {
	less := lessFunc(key)
	if less == nil {
		return
	}
	if order == "desc" {
		asc := less
		less = func(a, b Invoice) bool { return asc(b, a) }
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}

func lessFunc(key string) func(a, b Invoice) bool {
	switch key {
	case SortByNumber:
		return func(a, b Invoice) bool { return a.FullNumber < b.FullNumber }
	case SortByDate:
		return func(a, b Invoice) bool { return a.Date < b.Date }
	case SortByContractor:
		return func(a, b Invoice) bool { return a.Contractor < b.Contractor }
	case SortByNetto:
		return func(a, b Invoice) bool { return a.Netto < b.Netto }
	case SortByTax:
		return func(a, b Invoice) bool { return a.Tax < b.Tax }
	case SortByBrutto:
		return func(a, b Invoice) bool { return a.Brutto < b.Brutto }
	case SortByPaid:
		return func(a, b Invoice) bool { return a.Paid() < b.Paid() }
	case SortByPaymentDate:
		return func(a, b Invoice) bool { return a.PaymentDate < b.PaymentDate }
	case SortByStatus:
		return func(a, b Invoice) bool { return a.PaymentState < b.PaymentState }
	}
	return nil
}
