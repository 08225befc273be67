package report

import (
	"fmt"
	"time"

	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

const dateLayout = "2006-01-02"

// DefaultQueryLimit caps period queries; a month of invoices fits well
// under it.
const DefaultQueryLimit = 500

// DateRange expands a year with optional month and day into an inclusive
// from/to pair in the vendor's YYYY-MM-DD form. A zero month or day widens
// the range to the whole year or month; a set day collapses it to that one
// date.
func DateRange(year, month, day int) (from, to string) {
	m := month
	if m == 0 {
		m = 1
	}
	d := day
	if d == 0 {
		d = 1
	}
	from = time.Date(year, time.Month(m), d, 0, 0, 0, 0, time.UTC).Format(dateLayout)
	switch {
	case day != 0:
		to = from
	case month != 0:
		// Day zero of the next month is the last day of this one,
		// December included.
		to = time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Format(dateLayout)
	default:
		to = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).Format(dateLayout)
	}
	return from, to
}

// PeriodQuery builds the find body selecting invoices dated inside the
// inclusive from/to range. A non-positive limit falls back to
// DefaultQueryLimit.
func PeriodQuery(from, to string, limit int) xmlcodec.Raw {
	if limit <= 0 {
		limit = DefaultQueryLimit
	}
	body := fmt.Sprintf(
		"<api><invoices><parameters><limit>%d</limit><conditions>"+
			"<condition><field>date</field><operator>ge</operator><value>%s</value></condition>"+
			"<condition><field>date</field><operator>le</operator><value>%s</value></condition>"+
			"</conditions></parameters></invoices></api>",
		limit, from, to)
	return xmlcodec.Raw(body)
}
