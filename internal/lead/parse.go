package lead

import (
	"encoding/csv"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrMalformedAmount is returned by ParseAmount for text that does not hold a
// non-negative number. Parse never surfaces it: such amounts import as zero.
var ErrMalformedAmount = errors.New("malformed amount")

var (
	currencySymbol = regexp.MustCompile(`R\$\s?`)
	leadingNumber  = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)
)

// ParseReport counts what happened to the data rows of one import.
type ParseReport struct {
	Rows          int // data rows after the header
	Imported      int
	Skipped       int // rows dropped for an empty name
	ZeroedAmounts int // kept rows whose amount was malformed
}

// Parse reads CSV text with a header row and the columns
// NOME,CPF,TELEFONE,VALOR LIBERADO into leads, in input order.
func Parse(raw string) ([]Lead, error) {
	leads, _, err := ParseWithReport(raw)
	return leads, err
}

// ParseWithReport is Parse plus per-row accounting for the caller's notice.
func ParseWithReport(raw string) ([]Lead, ParseReport, error) {
	lines := nonBlankLines(raw)
	if len(lines) < 2 {
		return nil, ParseReport{}, &ImportError{Err: ErrTooFewLines}
	}

	var rep ParseReport
	leads := make([]Lead, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rep.Rows++
		fields := splitFields(line)
		l := Lead{
			Name:  field(fields, 0),
			TaxID: field(fields, 1),
			Phone: field(fields, 2),
		}
		if l.Name == "" {
			rep.Skipped++
			continue
		}
		amount, err := ParseAmount(field(fields, 3))
		if err != nil {
			rep.ZeroedAmounts++
		}
		l.ReleasedAmount = amount
		leads = append(leads, l)
	}
	rep.Imported = len(leads)
	return leads, rep, nil
}

// ParseAmount normalizes a pt-BR currency string ("R$ 1.234,56") to a decimal.
// Empty text is zero. Text that does not start with a number, or that is
// negative, yields zero and ErrMalformedAmount. Trailing garbage after a
// leading number is ignored.
func ParseAmount(text string) (decimal.Decimal, error) {
	s := currencySymbol.ReplaceAllString(text, "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" {
		return decimal.Zero, nil
	}

	num := leadingNumber.FindString(s)
	if num == "" {
		return decimal.Zero, ErrMalformedAmount
	}
	d, err := decimal.NewFromString(num)
	if err != nil || d.IsNegative() {
		return decimal.Zero, ErrMalformedAmount
	}
	return d, nil
}

func nonBlankLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitFields splits one CSV line on commas. A well-formed double-quoted
// field may hold commas ("R$ 1.234,56"). A line with unbalanced or stray
// quotes is split on every comma. Quote characters are dropped from every
// field.
func splitFields(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if err != nil {
		fields = strings.Split(line, ",")
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(strings.ReplaceAll(strings.TrimSpace(f), `"`, ""))
	}
	return fields
}

func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
