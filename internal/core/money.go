// Package core provides the domain model of the finance tracker: users,
// transactions, the fixed category set and monetary parsing/formatting.
//
// Amounts are handled as exact decimals; formatting is a pure presentation
// transform and never alters the stored value.
package core

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// brlFormatter renders values the way the app displays them: grapheme, space,
// thousands separated by dots, cents by a comma ("R$ 1.000,00").
var brlFormatter = money.NewFormatter(2, ",", ".", money.GetCurrency(money.BRL).Grapheme, "$ 1")

// ParseAmount parses a strictly positive decimal amount string. Both dot and
// comma decimal separators are accepted.
//
// Examples:
//
//	ParseAmount("1000")   -> 1000, nil
//	ParseAmount("12,34")  -> 12.34, nil
//	ParseAmount("-5")     -> error
func ParseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	normalized := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			normalized[i] = '.'
		} else {
			normalized[i] = s[i]
		}
	}
	d, err := decimal.NewFromString(string(normalized))
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}

// FormatBRL renders a decimal value as Brazilian Real currency text.
// The value is shifted to cents and rounded half-up on the third decimal.
func FormatBRL(d decimal.Decimal) string {
	return brlFormatter.Format(d.Shift(2).Round(0).IntPart())
}
