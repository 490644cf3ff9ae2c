// Package lead holds the lead pool: CSV import, amount normalization and
// prefix distribution to a seller.
//
// The pool is a value. Import and distribution return a new Pool instead of
// mutating the current one, so a caller swapping its reference in a single
// assignment never exposes a half-applied change.
package lead

import (
	"github.com/shopspring/decimal"
)

// Columns is the expected CSV header, in order.
var Columns = []string{"NOME", "CPF", "TELEFONE", "VALOR LIBERADO"}

// Lead is a prospective customer with a pre-approved credit amount.
type Lead struct {
	Name           string
	TaxID          string // CPF
	Phone          string
	ReleasedAmount decimal.Decimal
}

// Sum returns the exact sum of ReleasedAmount over leads.
func Sum(leads []Lead) decimal.Decimal {
	total := decimal.Zero
	for _, l := range leads {
		total = total.Add(l.ReleasedAmount)
	}
	return total
}
