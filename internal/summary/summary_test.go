package summary

import (
	"errors"
	"reflect"
	"testing"

	"gofinances/internal/core"
)

func tx(id, name, amount string, typ core.TransactionType, category, date string) core.Transaction {
	return core.Transaction{ID: id, Name: name, Amount: amount, Type: typ, Category: category, Date: date}
}

func TestBuildEmptyLedger(t *testing.T) {
	s, err := Build(nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(s.List) != 0 {
		t.Fatalf("expected empty list, got %d", len(s.List))
	}
	if s.Highlights.Entries.LastTransaction != NoEntryTransactions {
		t.Fatalf("unexpected entries label %q", s.Highlights.Entries.LastTransaction)
	}
	if s.Highlights.Expensive.LastTransaction != NoExpenseTransactions {
		t.Fatalf("unexpected expensive label %q", s.Highlights.Expensive.LastTransaction)
	}
	if s.Highlights.Total.LastTransaction != NoTransactions {
		t.Fatalf("unexpected total label %q", s.Highlights.Total.LastTransaction)
	}
	if s.Highlights.Total.Amount != "R$ 0,00" {
		t.Fatalf("unexpected total amount %q", s.Highlights.Total.Amount)
	}
}

func TestBuildSalaryAndRent(t *testing.T) {
	txs := []core.Transaction{
		tx("1", "Salary", "1000", core.Positive, "salary", "2024-01-05T10:00:00Z"),
		tx("2", "Rent", "400", core.Negative, "purchases", "2024-01-10T10:00:00Z"),
	}

	s, err := Build(txs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if got := s.Highlights.Entries.Amount; got != "R$ 1.000,00" {
		t.Fatalf("entries amount = %q", got)
	}
	if got := s.Highlights.Expensive.Amount; got != "R$ 400,00" {
		t.Fatalf("expensive amount = %q", got)
	}
	if got := s.Highlights.Total.Amount; got != "R$ 600,00" {
		t.Fatalf("total amount = %q", got)
	}
	if got := s.Highlights.Entries.LastTransaction; got != "Última entrada dia 5 de janeiro" {
		t.Fatalf("entries label = %q", got)
	}
	if got := s.Highlights.Expensive.LastTransaction; got != "Última saída dia 10 de janeiro" {
		t.Fatalf("expensive label = %q", got)
	}
	if got := s.Highlights.Total.LastTransaction; got != "01 à 10 de janeiro" {
		t.Fatalf("total label = %q", got)
	}

	if len(s.List) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(s.List))
	}
	first := s.List[0]
	if first.Amount != "R$ 1.000,00" || first.Date != "05/01/24" || first.CategoryName != "Salário" {
		t.Fatalf("unexpected first entry %+v", first)
	}
}

func TestBuildIdempotent(t *testing.T) {
	txs := []core.Transaction{
		tx("1", "Salary", "1000", core.Positive, "salary", "2024-01-05T10:00:00Z"),
		tx("2", "Rent", "400", core.Negative, "purchases", "2024-01-10T10:00:00Z"),
		tx("3", "Cinema", "35.50", core.Negative, "leisure", "2024-02-01T18:30:00Z"),
	}

	first, err := Build(txs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	second, err := Build(txs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output for the same snapshot")
	}
}

func TestBuildLastTransactionPicksMaximumDate(t *testing.T) {
	txs := []core.Transaction{
		tx("1", "Groceries", "50", core.Negative, "food", "2024-03-20T08:00:00Z"),
		tx("2", "Fuel", "80", core.Negative, "car", "2024-03-02T08:00:00Z"),
		tx("3", "Snack", "12", core.Negative, "food", "2024-03-15T08:00:00Z"),
	}

	s, err := Build(txs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := s.Highlights.Expensive.LastTransaction; got != "Última saída dia 20 de março" {
		t.Fatalf("expensive label = %q", got)
	}
	if got := s.Highlights.Entries.LastTransaction; got != NoEntryTransactions {
		t.Fatalf("entries label = %q", got)
	}
}

func TestBuildNoExpensesIntervalSentinel(t *testing.T) {
	txs := []core.Transaction{
		tx("1", "Salary", "1000", core.Positive, "salary", "2024-01-05T10:00:00Z"),
	}
	s, err := Build(txs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := s.Highlights.Total.LastTransaction; got != NoTransactions {
		t.Fatalf("total label = %q", got)
	}
	if got := s.Highlights.Total.Amount; got != "R$ 1.000,00" {
		t.Fatalf("total amount = %q", got)
	}
}

func TestBuildNegativeNetTotal(t *testing.T) {
	txs := []core.Transaction{
		tx("1", "Salary", "100", core.Positive, "salary", "2024-01-05T10:00:00Z"),
		tx("2", "Rent", "400", core.Negative, "purchases", "2024-01-10T10:00:00Z"),
	}
	s, err := Build(txs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := s.Highlights.Total.Amount; got != "-R$ 300,00" {
		t.Fatalf("total amount = %q", got)
	}
}

func TestBuildMalformedAmount(t *testing.T) {
	txs := []core.Transaction{
		tx("1", "Salary", "1000", core.Positive, "salary", "2024-01-05T10:00:00Z"),
		tx("bad-record", "Rent", "four hundred", core.Negative, "purchases", "2024-01-10T10:00:00Z"),
	}
	_, err := Build(txs)
	var merr *core.MalformedRecordError
	if !errors.As(err, &merr) {
		t.Fatalf("expected MalformedRecordError, got %v", err)
	}
	if merr.ID != "bad-record" || merr.Field != "amount" {
		t.Fatalf("expected offending record identified, got %+v", merr)
	}
}

func TestBuildMalformedDate(t *testing.T) {
	txs := []core.Transaction{
		tx("bad-date", "Rent", "400", core.Negative, "purchases", ""),
	}
	_, err := Build(txs)
	var merr *core.MalformedRecordError
	if !errors.As(err, &merr) {
		t.Fatalf("expected MalformedRecordError, got %v", err)
	}
	if merr.ID != "bad-date" || merr.Field != "date" {
		t.Fatalf("expected offending record identified, got %+v", merr)
	}
}
