package dashboard

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mtlab/wfirma-go/pkg/internal/report"
)

type listQuery struct {
	Year           int
	Month          int
	Day            int
	SortBy         string
	SortOrder      string
	Page           int
	PerPage        int
	InvoiceNumbers string
}

// parseListQuery reads the dashboard query parameters. The current year is
// the default period; one unparsable date part falls the whole period back
// to the default rather than erroring the page.
func parseListQuery(r *http.Request) listQuery {
	q := r.URL.Query()
	out := listQuery{
		Year:      time.Now().Year(),
		SortOrder: "asc",
		Page:      1,
		PerPage:   report.DefaultPerPage,
	}

	year, yearErr := intParam(q.Get("year"))
	month, monthErr := intParam(q.Get("month"))
	day, dayErr := intParam(q.Get("day"))
	if yearErr == nil && monthErr == nil && dayErr == nil {
		if year != 0 {
			out.Year = year
		}
		out.Month = month
		out.Day = day
	}

	out.SortBy = q.Get("sort_by")
	if v := q.Get("sort_order"); v != "" {
		out.SortOrder = v
	}
	if v, err := intParam(q.Get("page")); err == nil && v != 0 {
		out.Page = v
	}
	if v, err := intParam(q.Get("per_page")); err == nil && v != 0 {
		out.PerPage = v
	}
	out.InvoiceNumbers = q.Get("invoice_numbers")
	return out
}

func intParam(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
