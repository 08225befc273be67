package dashboard

import (
	"html/template"
	"net/url"
	"strconv"

	"github.com/mtlab/wfirma-go/pkg/internal/report"
)

var templateFuncs = template.FuncMap{
	"money": report.FormatCurrency,
}

var (
	listTemplate   = template.Must(template.New("invoices").Funcs(templateFuncs).Parse(listTemplateHTML))
	reportTemplate = template.Must(template.New("report").Funcs(templateFuncs).Parse(reportTemplateHTML))
)

// listPage feeds the invoice list template.
type listPage struct {
	Year           int
	Month          int
	Day            int
	SortBy         string
	SortOrder      string
	InvoiceNumbers string
	Totals         report.Totals
	Page           report.Page
}

func (p listPage) baseQuery() url.Values {
	q := url.Values{}
	q.Set("year", strconv.Itoa(p.Year))
	if p.Month > 0 {
		q.Set("month", strconv.Itoa(p.Month))
	}
	if p.Day > 0 {
		q.Set("day", strconv.Itoa(p.Day))
	}
	if p.InvoiceNumbers != "" {
		q.Set("invoice_numbers", p.InvoiceNumbers)
	}
	if p.Page.PerPage != report.DefaultPerPage {
		q.Set("per_page", strconv.Itoa(p.Page.PerPage))
	}
	return q
}

// SortURL links a column header. Clicking the column already sorted on
// flips the order; any sort change starts back at page one.
func (p listPage) SortURL(key string) string {
	q := p.baseQuery()
	q.Set("sort_by", key)
	order := "asc"
	if p.SortBy == key && p.SortOrder == "asc" {
		order = "desc"
	}
	q.Set("sort_order", order)
	return "/?" + q.Encode()
}

// PageURL links one page keeping the filters and sort.
func (p listPage) PageURL(page int) string {
	q := p.baseQuery()
	if p.SortBy != "" {
		q.Set("sort_by", p.SortBy)
		q.Set("sort_order", p.SortOrder)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	return "/?" + q.Encode()
}

func (p listPage) PrevPage() int { return p.Page.Number - 1 }
func (p listPage) NextPage() int { return p.Page.Number + 1 }
func (p listPage) HasPrev() bool { return p.Page.Number > 1 }
func (p listPage) HasNext() bool { return p.Page.Number < p.Page.TotalPages }

// reportPage feeds the period report template.
type reportPage struct {
	Year   int
	Month  int
	Day    int
	Report report.Report
}

const listTemplateHTML = `<!doctype html>
<html lang="pl">
<head>
<meta charset="utf-8">
<title>Faktury</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.35rem 0.6rem; text-align: left; }
th a { color: inherit; }
td.num { text-align: right; white-space: nowrap; }
tfoot td { font-weight: bold; background: #f3f3f3; }
form { margin-bottom: 1rem; }
form input { margin-right: 0.5rem; }
.pager { margin-top: 1rem; }
</style>
</head>
<body>
<h1>Faktury</h1>
<form method="get" action="/">
<label>Rok <input type="number" name="year" value="{{.Year}}" size="5"></label>
<label>Miesiąc <input type="number" name="month" value="{{if .Month}}{{.Month}}{{end}}" min="1" max="12" size="3"></label>
<label>Dzień <input type="number" name="day" value="{{if .Day}}{{.Day}}{{end}}" min="1" max="31" size="3"></label>
<label>Numery <input type="text" name="invoice_numbers" value="{{.InvoiceNumbers}}" placeholder="np. FV 10/2024"></label>
<label>Na stronę <input type="number" name="per_page" value="{{.Page.PerPage}}" min="1" max="200" size="4"></label>
<button type="submit">Filtruj</button>
<a href="/report?year={{.Year}}{{if .Month}}&amp;month={{.Month}}{{end}}">Raport</a>
</form>
<p>Pozycje {{.Page.StartIndex}}-{{.Page.EndIndex}} z {{.Page.Total}}</p>
<table>
<thead>
<tr>
<th><a href="{{.SortURL "number"}}">Numer</a></th>
<th><a href="{{.SortURL "date"}}">Data</a></th>
<th><a href="{{.SortURL "contractor"}}">Kontrahent</a></th>
<th><a href="{{.SortURL "netto"}}">Netto</a></th>
<th><a href="{{.SortURL "tax"}}">VAT</a></th>
<th><a href="{{.SortURL "brutto"}}">Brutto</a></th>
<th><a href="{{.SortURL "paid"}}">Zapłacono</a></th>
<th><a href="{{.SortURL "paymentdate"}}">Termin</a></th>
<th><a href="{{.SortURL "status"}}">Status</a></th>
</tr>
</thead>
<tbody>
{{range .Page.Items}}
<tr>
<td>{{.FullNumber}}</td>
<td>{{.Date}}</td>
<td>{{.Contractor}}</td>
<td class="num">{{money .Netto}}</td>
<td class="num">{{money .Tax}}</td>
<td class="num">{{money .Brutto}} {{.Currency}}</td>
<td class="num">{{money .AlreadyPaid}}</td>
<td>{{.PaymentDate}}</td>
<td>{{.PaymentState}}</td>
</tr>
{{end}}
</tbody>
<tfoot>
<tr>
<td colspan="3">Razem ({{.Totals.Count}})</td>
<td class="num">{{money .Totals.Netto}}</td>
<td class="num">{{money .Totals.Tax}}</td>
<td class="num">{{money .Totals.Brutto}}</td>
<td colspan="3"></td>
</tr>
</tfoot>
</table>
<p class="pager">
{{if .HasPrev}}<a href="{{.PageURL .PrevPage}}">&laquo; Poprzednia</a>{{end}}
Strona {{.Page.Number}} z {{.Page.TotalPages}}
{{if .HasNext}}<a href="{{.PageURL .NextPage}}">Następna &raquo;</a>{{end}}
</p>
<script>
(function () {
	var proto = location.protocol === "https:" ? "wss://" : "ws://";
	var ws = new WebSocket(proto + location.host + "/ws");
	ws.onmessage = function () { location.reload(); };
})();
</script>
</body>
</html>
`

const reportTemplateHTML = `<!doctype html>
<html lang="pl">
<head>
<meta charset="utf-8">
<title>Raport faktur</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
table { border-collapse: collapse; margin-bottom: 1.5rem; }
th, td { border: 1px solid #ccc; padding: 0.35rem 0.6rem; text-align: left; }
td.num { text-align: right; white-space: nowrap; }
h2 { margin-top: 1.5rem; }
</style>
</head>
<body>
<h1>Raport faktur {{.Report.From}} do {{.Report.To}}</h1>
<p><a href="/?year={{.Year}}{{if .Month}}&amp;month={{.Month}}{{end}}">Wróć do listy</a></p>
<h2>Podsumowanie</h2>
<table>
<tr><th>Liczba faktur</th><td class="num">{{.Report.Summary.Count}}</td></tr>
<tr><th>Netto</th><td class="num">{{money .Report.Summary.Netto}}</td></tr>
<tr><th>VAT</th><td class="num">{{money .Report.Summary.Tax}}</td></tr>
<tr><th>Brutto</th><td class="num">{{money .Report.Summary.Brutto}}</td></tr>
<tr><th>Zapłacono</th><td class="num">{{money .Report.Summary.Paid}}</td></tr>
<tr><th>Pozostało</th><td class="num">{{money .Report.Summary.Outstanding}}</td></tr>
<tr><th>Średnia brutto</th><td class="num">{{money .Report.Summary.MeanBrutto}}</td></tr>
<tr><th>Odchylenie brutto</th><td class="num">{{money .Report.Summary.StdDevBrutto}}</td></tr>
</table>
<h2>Wg miesiąca</h2>
<table>
<thead><tr><th>Miesiąc</th><th>Liczba</th><th>Netto</th><th>VAT</th><th>Brutto</th></tr></thead>
<tbody>
{{range .Report.ByMonth}}
<tr><td>{{.Key}}</td><td class="num">{{.Count}}</td><td class="num">{{money .Netto}}</td><td class="num">{{money .Tax}}</td><td class="num">{{money .Brutto}}</td></tr>
{{end}}
</tbody>
</table>
<h2>Wg kontrahenta</h2>
<table>
<thead><tr><th>Kontrahent</th><th>Liczba</th><th>Netto</th><th>VAT</th><th>Brutto</th></tr></thead>
<tbody>
{{range .Report.ByContractor}}
<tr><td>{{.Key}}</td><td class="num">{{.Count}}</td><td class="num">{{money .Netto}}</td><td class="num">{{money .Tax}}</td><td class="num">{{money .Brutto}}</td></tr>
{{end}}
</tbody>
</table>
<h2>Wg waluty</h2>
<table>
<thead><tr><th>Waluta</th><th>Liczba</th><th>Netto</th><th>VAT</th><th>Brutto</th></tr></thead>
<tbody>
{{range .Report.ByCurrency}}
<tr><td>{{.Key}}</td><td class="num">{{.Count}}</td><td class="num">{{money .Netto}}</td><td class="num">{{money .Tax}}</td><td class="num">{{money .Brutto}}</td></tr>
{{end}}
</tbody>
</table>
</body>
</html>
`
