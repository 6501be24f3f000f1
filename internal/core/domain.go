package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Positive TransactionType = "positive"
	Negative TransactionType = "negative"
)

type (
	TransactionType string

	// User is the provider-agnostic identity record used throughout a session.
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Photo string `json:"photo,omitempty"`
	}

	// Transaction is a single income or expense record. Amount is kept as the
	// decimal string the caller submitted and Date as an ISO-8601 instant, so
	// the persisted JSON round-trips unchanged; both are re-parsed wherever a
	// numeric or temporal value is needed.
	Transaction struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Amount   string          `json:"amount"`
		Type     TransactionType `json:"type"`
		Category string          `json:"category"`
		Date     string          `json:"date"`
	}

	Category struct {
		Key  string
		Name string
	}
)

// Categories is the fixed category set. Keys are stable identifiers stored on
// transactions; names are display labels.
var Categories = []Category{
	{Key: "purchases", Name: "Compras"},
	{Key: "food", Name: "Alimentação"},
	{Key: "salary", Name: "Salário"},
	{Key: "car", Name: "Carro"},
	{Key: "leisure", Name: "Lazer"},
	{Key: "studies", Name: "Estudos"},
}

func (t TransactionType) IsValid() bool {
	switch t {
	case Positive, Negative:
		return true
	default:
		return false
	}
}

// CategoryByKey returns the category for a key, or false when unknown.
func CategoryByKey(key string) (Category, bool) {
	for _, c := range Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// IsZero reports whether the user is the absent "signed out" user.
func (u User) IsZero() bool {
	return u.ID == ""
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyUserName
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyUserEmail
	}
	return nil
}

// NewTransaction builds a transaction from user input, assigning a fresh id
// and the current instant. Validation happens here, before any persistence.
func NewTransaction(name, amount string, typ TransactionType, category string) (Transaction, error) {
	t := Transaction{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		Amount:   strings.TrimSpace(amount),
		Type:     typ,
		Category: category,
		Date:     time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func (t Transaction) Validate() error {
	if t.Name == "" {
		return &ValidationError{Field: "name", Err: ErrEmptyName}
	}
	if len(t.Name) > 200 {
		return &ValidationError{Field: "name", Err: ErrNameTooLong}
	}
	if _, err := ParseAmount(t.Amount); err != nil {
		return &ValidationError{Field: "amount", Err: err}
	}
	if !t.Type.IsValid() {
		return &ValidationError{Field: "type", Err: ErrUnknownType}
	}
	if _, ok := CategoryByKey(t.Category); !ok {
		return &ValidationError{Field: "category", Err: ErrUnknownCategory}
	}
	return nil
}

// Time parses the transaction's stored date.
func (t Transaction) Time() (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, t.Date)
	if err != nil {
		return time.Time{}, &MalformedRecordError{ID: t.ID, Field: "date", Err: err}
	}
	return ts, nil
}
