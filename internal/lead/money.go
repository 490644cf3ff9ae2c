package lead

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount the way the operators read it: "R$ 1.234,56".
// Digits come from the decimal itself, so large totals stay exact.
func FormatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign, s = "-", rest
	}
	whole, frac, _ := strings.Cut(s, ".")
	return "R$ " + sign + groupThousands(whole) + "," + frac
}

// FormatCount renders a count with pt-BR digit grouping ("1.234").
func FormatCount(n int) string {
	return ptBR.Sprintf("%d", n)
}

func groupThousands(digits string) string {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:min(head, len(digits))])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
