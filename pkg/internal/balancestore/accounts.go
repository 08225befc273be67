package balancestore

import (
	"strconv"

	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

// FromAccounts converts a company_accounts find response into snapshot
// rows. The balance leaf is named "balance" or "money" depending on the
// endpoint generation; currency defaults to PLN when the record omits it.
func FromAccounts(doc xmlcodec.Map) []Balance {
	recs := doc.Records("company_accounts", "company_account")
	out := make([]Balance, 0, len(recs))
	for _, rec := range recs {
		amount := rec.Text("balance")
		if amount == "" {
			amount = rec.Text("money")
		}
		b := Balance{
			AccountID: rec.Text("id"),
			Name:      rec.Text("name"),
			Currency:  rec.Text("currency"),
		}
		if v, err := strconv.ParseFloat(amount, 64); err == nil {
			b.Balance = v
		}
		if b.Currency == "" {
			b.Currency = "PLN"
		}
		out = append(out, b)
	}
	return out
}
