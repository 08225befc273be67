package report

import (
	"strings"

	"github.com/mtlab/wfirma-go/pkg/internal/utils"
)

// ParseNumbers splits a comma-separated invoice number parameter into a
// clean list, dropping blanks.
func ParseNumbers(param string) []string {
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FilterByNumbers keeps rows whose full number is on the list. An empty
// list keeps everything.
func FilterByNumbers(rows []Invoice, numbers []string) []Invoice {
	if len(numbers) == 0 {
		return rows
	}
	return utils.Filter(rows, func(inv Invoice) bool {
		return utils.Contains(numbers, inv.FullNumber)
	})
}
