// Package summary derives display-ready aggregates from a transaction list.
// Build is a pure function of its input: same list, same output, no hidden
// state, nothing cached between calls.
package summary

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"gofinances/internal/core"
)

// Sentinel labels emitted when a type group has no transactions.
const (
	NoEntryTransactions   = "Não há transações de entrada"
	NoExpenseTransactions = "Não há transações de saída"
	NoTransactions        = "Não há transações"
)

type (
	// Entry is one display row: the stored transaction with its amount and
	// date rendered for presentation. The stored values are untouched.
	Entry struct {
		ID           string               `json:"id"`
		Name         string               `json:"name"`
		Amount       string               `json:"amount"`
		Type         core.TransactionType `json:"type"`
		Category     string               `json:"category"`
		CategoryName string               `json:"categoryName"`
		Date         string               `json:"date"`
	}

	// Highlight is a derived value for one transaction type or the net
	// total: a currency string plus a last-movement label.
	Highlight struct {
		Amount          string `json:"amount"`
		LastTransaction string `json:"lastTransaction"`
	}

	Highlights struct {
		Entries   Highlight `json:"entries"`
		Expensive Highlight `json:"expensive"`
		Total     Highlight `json:"total"`
	}

	Summary struct {
		List       []Entry    `json:"list"`
		Highlights Highlights `json:"highlights"`
	}
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Build aggregates the full transaction list into per-type totals, the net
// balance and last-movement labels. A record whose amount or date does not
// parse aborts the whole computation with a MalformedRecordError naming it;
// partial totals are never reported.
func Build(txs []core.Transaction) (Summary, error) {
	var (
		entriesTotal   = decimal.Zero
		expensiveTotal = decimal.Zero
		lastEntry      time.Time
		lastExpense    time.Time
		hasEntry       bool
		hasExpense     bool
	)

	list := make([]Entry, 0, len(txs))
	for _, t := range txs {
		amount, err := core.ParseAmount(t.Amount)
		if err != nil {
			return Summary{}, &core.MalformedRecordError{ID: t.ID, Field: "amount", Err: err}
		}
		ts, err := t.Time()
		if err != nil {
			return Summary{}, err
		}

		switch t.Type {
		case core.Positive:
			entriesTotal = entriesTotal.Add(amount)
			if !hasEntry || ts.After(lastEntry) {
				lastEntry = ts
				hasEntry = true
			}
		case core.Negative:
			expensiveTotal = expensiveTotal.Add(amount)
			if !hasExpense || ts.After(lastExpense) {
				lastExpense = ts
				hasExpense = true
			}
		default:
			return Summary{}, &core.MalformedRecordError{ID: t.ID, Field: "type", Err: core.ErrUnknownType}
		}

		categoryName := t.Category
		if c, ok := core.CategoryByKey(t.Category); ok {
			categoryName = c.Name
		}
		list = append(list, Entry{
			ID:           t.ID,
			Name:         t.Name,
			Amount:       core.FormatBRL(amount),
			Type:         t.Type,
			Category:     t.Category,
			CategoryName: categoryName,
			Date:         ts.Format("02/01/06"),
		})
	}

	total := entriesTotal.Sub(expensiveTotal)

	entriesLabel := NoEntryTransactions
	if hasEntry {
		entriesLabel = "Última entrada dia " + dayMonthLabel(lastEntry)
	}
	expensiveLabel := NoExpenseTransactions
	if hasExpense {
		expensiveLabel = "Última saída dia " + dayMonthLabel(lastExpense)
	}
	totalLabel := NoTransactions
	if hasExpense {
		totalLabel = "01 à " + dayMonthLabel(lastExpense)
	}

	return Summary{
		List: list,
		Highlights: Highlights{
			Entries:   Highlight{Amount: core.FormatBRL(entriesTotal), LastTransaction: entriesLabel},
			Expensive: Highlight{Amount: core.FormatBRL(expensiveTotal), LastTransaction: expensiveLabel},
			Total:     Highlight{Amount: core.FormatBRL(total), LastTransaction: totalLabel},
		},
	}, nil
}

// dayMonthLabel renders "10 de janeiro" style labels.
func dayMonthLabel(t time.Time) string {
	return fmt.Sprintf("%d de %s", t.Day(), monthNames[int(t.Month())-1])
}
