package report

// Pagination bounds shared with the dashboard query contract.
const (
	DefaultPerPage = 20
	MaxPerPage     = 200
)

// Page is one slice of a sorted invoice list. StartIndex and EndIndex are
// the 1-based display bounds ("showing 21-40 of 57"); a page past the end
// keeps its nominal StartIndex and an EndIndex clamped to Total.
type Page struct {
	Items      []Invoice
	Number     int
	PerPage    int
	Total      int
	TotalPages int
	StartIndex int
	EndIndex   int
}

// Paginate slices rows for one page. Page numbers below 1 fall back to 1;
// per-page sizes outside 1..MaxPerPage fall back to DefaultPerPage or are
// capped.
func Paginate(rows []Invoice, page, perPage int) Page {
	if page < 1 {
		page = 1
	}
	switch {
	case perPage < 1:
		perPage = DefaultPerPage
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	}
	total := len(rows)
	start := (page - 1) * perPage
	first, last := start, start+perPage
	if first > total {
		first = total
	}
	if last > total {
		last = total
	}
	return Page{
		Items:      rows[first:last],
		Number:     page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
		StartIndex: start + 1,
		EndIndex:   last,
	}
}
