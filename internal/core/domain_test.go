package core

import (
	"errors"
	"testing"
	"time"
)

func TestNewTransactionAssignsIDAndDate(t *testing.T) {
	before := time.Now().UTC()
	tx, err := NewTransaction("Salary", "1000", Positive, "salary")
	after := time.Now().UTC()
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if tx.ID == "" {
		t.Fatal("expected generated id")
	}
	ts, err := tx.Time()
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if ts.Before(before) || ts.After(after) {
		t.Fatalf("date %v outside execution window [%v, %v]", ts, before, after)
	}

	other, err := NewTransaction("Salary", "1000", Positive, "salary")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if other.ID == tx.ID {
		t.Fatal("expected unique ids")
	}
}

func TestNewTransactionValidation(t *testing.T) {
	cases := []struct {
		name     string
		txName   string
		amount   string
		typ      TransactionType
		category string
	}{
		{"empty name", "", "10", Positive, "food"},
		{"negative amount", "Rent", "-5", Negative, "purchases"},
		{"zero amount", "Rent", "0", Negative, "purchases"},
		{"non-numeric amount", "Rent", "abc", Negative, "purchases"},
		{"unknown type", "Rent", "10", TransactionType("sideways"), "purchases"},
		{"unknown category", "Rent", "10", Negative, "gadgets"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTransaction(tc.txName, tc.amount, tc.typ, tc.category)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestNewTransactionNegativeAmountFailsBeforePersistence(t *testing.T) {
	_, err := NewTransaction("Rent", "-5", Negative, "purchases")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestUserValidate(t *testing.T) {
	good := User{ID: "42", Name: "Ana", Email: "a@x.com"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bads := []User{
		{Name: "Ana", Email: "a@x.com"},
		{ID: "42", Email: "a@x.com"},
		{ID: "42", Name: "Ana"},
	}
	for i, u := range bads {
		if err := u.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestUserIsZero(t *testing.T) {
	if !(User{}).IsZero() {
		t.Fatal("empty user should be zero")
	}
	if (User{ID: "42"}).IsZero() {
		t.Fatal("user with id should not be zero")
	}
}

func TestCategoryByKey(t *testing.T) {
	if c, ok := CategoryByKey("salary"); !ok || c.Name != "Salário" {
		t.Fatalf("expected salary category, got %+v ok=%v", c, ok)
	}
	if _, ok := CategoryByKey("unknown"); ok {
		t.Fatal("expected unknown category to be rejected")
	}
}

func TestTransactionTimeMalformed(t *testing.T) {
	tx := Transaction{ID: "abc", Date: "not-a-date"}
	_, err := tx.Time()
	var merr *MalformedRecordError
	if !errors.As(err, &merr) {
		t.Fatalf("expected MalformedRecordError, got %v", err)
	}
	if merr.ID != "abc" || merr.Field != "date" {
		t.Fatalf("expected offending record identified, got %+v", merr)
	}
}
