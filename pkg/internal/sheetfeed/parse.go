package sheetfeed

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParsePayments reads sheet CSV into payment rows. The header row, blank
// and short rows, and rows without a parsable amount are skipped; a
// missing currency column defaults to PLN.
func ParsePayments(r io.Reader) ([]ExpectedPayment, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	var out []ExpectedPayment
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sheet feed: csv: %w", err)
		}
		if p, ok := paymentFromRow(rec); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func paymentFromRow(rec []string) (ExpectedPayment, bool) {
	if len(rec) < 3 {
		return ExpectedPayment{}, false
	}
	num := strings.TrimSpace(rec[0])
	if num == "" || strings.EqualFold(num, "invoice_number") {
		return ExpectedPayment{}, false
	}
	amt, ok := parseAmount(rec[2])
	if !ok {
		return ExpectedPayment{}, false
	}
	p := ExpectedPayment{
		InvoiceNumber: num,
		DueDate:       strings.TrimSpace(rec[1]),
		Amount:        amt,
	}
	if len(rec) > 3 {
		p.Currency = strings.TrimSpace(rec[3])
	}
	if p.Currency == "" {
		p.Currency = "PLN"
	}
	if len(rec) > 4 {
		p.Note = strings.TrimSpace(rec[4])
	}
	return p, true
}

// parseAmount accepts both 1234.56 and the sheet-typical 1 234,56 form.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
