package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
)

// ExportRow is the flat export schema shared by the Parquet and CSV
// writers.
type ExportRow struct {
	ID           string  `parquet:"id"`
	FullNumber   string  `parquet:"fullnumber"`
	Date         string  `parquet:"date"`
	Contractor   string  `parquet:"contractor"`
	Currency     string  `parquet:"currency"`
	Netto        float64 `parquet:"netto"`
	Tax          float64 `parquet:"tax"`
	Brutto       float64 `parquet:"brutto"`
	AlreadyPaid  float64 `parquet:"alreadypaid"`
	PaymentDate  string  `parquet:"paymentdate"`
	PaymentState string  `parquet:"paymentstate"`
}

func exportRows(rows []Invoice) []ExportRow {
	out := make([]ExportRow, len(rows))
	for i, inv := range rows {
		out[i] = ExportRow{
			ID:           inv.ID,
			FullNumber:   inv.FullNumber,
			Date:         inv.Date,
			Contractor:   inv.Contractor,
			Currency:     inv.Currency,
			Netto:        inv.Netto,
			Tax:          inv.Tax,
			Brutto:       inv.Brutto,
			AlreadyPaid:  inv.AlreadyPaid,
			PaymentDate:  inv.PaymentDate,
			PaymentState: inv.PaymentState,
		}
	}
	return out
}

// WriteParquet writes rows as one Parquet file.
func WriteParquet(w io.Writer, rows []Invoice) error {
	pw := parquet.NewGenericWriter[ExportRow](w)
	if _, err := pw.Write(exportRows(rows)); err != nil {
		pw.Close()
		return fmt.Errorf("parquet write: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("parquet close: %w", err)
	}
	return nil
}

var csvHeader = []string{
	"id", "fullnumber", "date", "contractor", "currency",
	"netto", "tax", "brutto", "alreadypaid", "paymentdate", "paymentstate",
}

// WriteCSV writes rows as semicolon-separated CSV behind a UTF-8 BOM, the
// dialect Polish Excel opens without an import wizard.
func WriteCSV(w io.Writer, rows []Invoice) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("csv BOM: %w", err)
	}
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, row := range exportRows(rows) {
		record := []string{
			row.ID,
			row.FullNumber,
			row.Date,
			row.Contractor,
			row.Currency,
			fmt.Sprintf("%.2f", row.Netto),
			fmt.Sprintf("%.2f", row.Tax),
			fmt.Sprintf("%.2f", row.Brutto),
			fmt.Sprintf("%.2f", row.AlreadyPaid),
			row.PaymentDate,
			row.PaymentState,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv row %s: %w", row.FullNumber, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	return nil
}
