package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mtlab/wfirma-go/pkg/wfirma"
)

var (
	reportYear    int
	reportMonth   int
	reportDay     int
	reportCSV     string
	reportParquet string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a period report",
	Long: `Fetches the invoices issued in the given period and prints the
rows, the by-month/by-contractor/by-currency breakdowns and the summary
statistics. --csv and --parquet additionally export the rows.`,
	RunE: runReport,
}

func init() {
	now := time.Now()
	reportCmd.Flags().IntVar(&reportYear, "year", now.Year(), "Report year")
	reportCmd.Flags().IntVar(&reportMonth, "month", int(now.Month()), "Report month, 0 for the whole year")
	reportCmd.Flags().IntVar(&reportDay, "day", 0, "Report day, 0 for the whole month")
	reportCmd.Flags().StringVar(&reportCSV, "csv", "", "Write rows to this CSV file")
	reportCmd.Flags().StringVar(&reportParquet, "parquet", "", "Write rows to this parquet file")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger()

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	from, to := wfirma.DateRange(reportYear, reportMonth, reportDay)
	doc, err := client.Invoices.Find(cmd.Context(), wfirma.PeriodQuery(from, to, wfirma.DefaultQueryLimit))
	if err != nil {
		return fmt.Errorf("fetch invoices: %w", err)
	}
	rows := wfirma.InvoiceRows(doc)
	wfirma.SortInvoices(rows, wfirma.SortByDate, "asc")

	rep := wfirma.BuildReport(from, to, rows)
	printReport(rep)

	if reportCSV != "" {
		if err := exportFile(reportCSV, rows, wfirma.WriteCSV); err != nil {
			return err
		}
		fmt.Printf("\nCSV written to %s\n", reportCSV)
	}
	if reportParquet != "" {
		if err := exportFile(reportParquet, rows, wfirma.WriteParquet); err != nil {
			return err
		}
		fmt.Printf("Parquet written to %s\n", reportParquet)
	}
	return nil
}

func printReport(rep wfirma.Report) {
	fmt.Printf("Invoices %s to %s\n\n", rep.From, rep.To)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tDATE\tCONTRACTOR\tNETTO\tVAT\tBRUTTO\tPAID\tCURRENCY")
	for _, row := range rep.Invoices {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.FullNumber, row.Date, row.Contractor,
			wfirma.FormatCurrency(row.Netto), wfirma.FormatCurrency(row.Tax),
			wfirma.FormatCurrency(row.Brutto), wfirma.FormatCurrency(row.Paid()),
			row.Currency,
		)
	}
	w.Flush()

	printGroups("By month", rep.ByMonth)
	printGroups("By contractor", rep.ByContractor)
	printGroups("By currency", rep.ByCurrency)

	s := rep.Summary
	fmt.Printf("\nSummary: %d invoices, netto %s, VAT %s, brutto %s\n",
		s.Count, wfirma.FormatCurrency(s.Netto), wfirma.FormatCurrency(s.Tax), wfirma.FormatCurrency(s.Brutto))
	fmt.Printf("Paid %s, outstanding %s, mean brutto %s, stddev %s\n",
		wfirma.FormatCurrency(s.Paid), wfirma.FormatCurrency(s.Outstanding),
		wfirma.FormatCurrency(s.MeanBrutto), wfirma.FormatCurrency(s.StdDevBrutto))
}

func printGroups(title string, groups []wfirma.GroupTotals) {
	if len(groups) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, g := range groups {
		fmt.Fprintf(w, "  %s\t%d\t%s\n", g.Key, g.Count, wfirma.FormatCurrency(g.Brutto))
	}
	w.Flush()
}

func exportFile(path string, rows []wfirma.Invoice, write func(w io.Writer, rows []wfirma.Invoice) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
