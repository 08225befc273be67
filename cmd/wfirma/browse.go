package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mtlab/wfirma-go/pkg/wfirma"
)

var (
	browseYear  int
	browseMonth int
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse invoices interactively",
	Long: `Opens a terminal browser over the invoices of one month. Left and
right switch months, up and down move the selection, / filters by number
or contractor.`,
	RunE: runBrowse,
}

func init() {
	now := time.Now()
	browseCmd.Flags().IntVar(&browseYear, "year", now.Year(), "Starting year")
	browseCmd.Flags().IntVar(&browseMonth, "month", int(now.Month()), "Starting month")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client, err := newClient(cfg, newLogger())
	if err != nil {
		return err
	}

	p := tea.NewProgram(newBrowseModel(client, browseYear, browseMonth), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

var (
	browseTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#2F6F4F")).
				Padding(0, 1)

	browseSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#2F6F4F"))

	browsePaidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	browseUnpaidStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFB86C"))

	browseHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	browseErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6B6B"))
)

type browseModel struct {
	client *wfirma.Client

	year  int
	month int

	rows     []wfirma.Invoice
	filtered []wfirma.Invoice
	filter   textinput.Model
	selected int
	height   int

	loading bool
	err     error
}

type invoicesMsg struct {
	year  int
	month int
	rows  []wfirma.Invoice
	err   error
}

func newBrowseModel(client *wfirma.Client, year, month int) *browseModel {
	filter := textinput.New()
	filter.Placeholder = "number or contractor"
	filter.Prompt = "/ "
	filter.Width = 40

	return &browseModel{
		client:  client,
		year:    year,
		month:   month,
		filter:  filter,
		loading: true,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.fetchMonth()
}

func (m *browseModel) fetchMonth() tea.Cmd {
	client := m.client
	year, month := m.year, m.month
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		from, to := wfirma.DateRange(year, month, 0)
		doc, err := client.Invoices.Find(ctx, wfirma.PeriodQuery(from, to, wfirma.DefaultQueryLimit))
		if err != nil {
			return invoicesMsg{year: year, month: month, err: err}
		}
		rows := wfirma.InvoiceRows(doc)
		wfirma.SortInvoices(rows, wfirma.SortByDate, "asc")
		return invoicesMsg{year: year, month: month, rows: rows}
	}
}

// shiftMonth moves the period, carrying over the year at both ends.
func (m *browseModel) shiftMonth(delta int) {
	m.month += delta
	for m.month < 1 {
		m.month += 12
		m.year--
	}
	for m.month > 12 {
		m.month -= 12
		m.year++
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		if m.filter.Focused() {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter", "esc":
				m.filter.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "/":
			m.filter.Focus()
			return m, textinput.Blink

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}

		case "left", "h":
			m.shiftMonth(-1)
			m.loading = true
			return m, m.fetchMonth()

		case "right", "l":
			m.shiftMonth(1)
			m.loading = true
			return m, m.fetchMonth()
		}

	case invoicesMsg:
		// A slow response for a month already left behind is stale.
		if msg.year != m.year || msg.month != m.month {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		m.rows = msg.rows
		m.applyFilter()
	}

	return m, nil
}

func (m *browseModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		m.filtered = m.rows
	} else {
		m.filtered = nil
		for _, row := range m.rows {
			if strings.Contains(strings.ToLower(row.FullNumber), query) ||
				strings.Contains(strings.ToLower(row.Contractor), query) {
				m.filtered = append(m.filtered, row)
			}
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = len(m.filtered) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// visibleWindow slides a fixed-size view over the filtered rows so the
// selection stays on screen.
func (m *browseModel) visibleWindow() (start, end int) {
	size := m.height - 8
	if size < 5 {
		size = 20
	}
	if len(m.filtered) <= size {
		return 0, len(m.filtered)
	}
	start = m.selected - size/2
	if start < 0 {
		start = 0
	}
	end = start + size
	if end > len(m.filtered) {
		end = len(m.filtered)
		start = end - size
	}
	return start, end
}

func (m *browseModel) View() string {
	var b strings.Builder

	b.WriteString(browseTitleStyle.Render(fmt.Sprintf("Invoices %04d-%02d", m.year, m.month)))
	b.WriteString("\n\n")

	if m.filter.Focused() || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(browseErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")

	case m.loading:
		b.WriteString("Loading invoices...\n")

	case len(m.filtered) == 0:
		b.WriteString("No invoices in this period.\n")

	default:
		start, end := m.visibleWindow()
		for i := start; i < end; i++ {
			row := m.filtered[i]
			line := m.formatRow(row)
			if i == m.selected {
				b.WriteString(browseSelectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}

		totals := wfirma.SumInvoices(m.filtered)
		b.WriteString(fmt.Sprintf("\n%d of %d invoices, brutto %s\n",
			len(m.filtered), len(m.rows), wfirma.FormatCurrency(totals.Brutto)))

		if m.selected < len(m.filtered) {
			sel := m.filtered[m.selected]
			b.WriteString(browseHelpStyle.Render(fmt.Sprintf(
				"due %s, paid %s of %s %s",
				sel.PaymentDate, wfirma.FormatCurrency(sel.AlreadyPaid),
				wfirma.FormatCurrency(sel.Brutto), sel.Currency)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(browseHelpStyle.Render("←/→ month • ↑/↓ select • / filter • q quit"))
	return b.String()
}

func (m *browseModel) formatRow(row wfirma.Invoice) string {
	state := browseUnpaidStyle.Render("open")
	if row.PaymentState == "paid" {
		state = browsePaidStyle.Render("paid")
	}
	return fmt.Sprintf("%-18s %s %-24s %12s %s %s",
		truncate(row.FullNumber, 18), row.Date, truncate(row.Contractor, 24),
		wfirma.FormatCurrency(row.Brutto), row.Currency, state)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
