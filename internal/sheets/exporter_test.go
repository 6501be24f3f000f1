package sheets

import (
	"testing"

	"gofinances/internal/core"
)

func TestRowShape(t *testing.T) {
	tx := core.Transaction{
		ID:       "tx-1",
		Name:     "Salary",
		Amount:   "1000",
		Type:     core.Positive,
		Category: "salary",
		Date:     "2024-01-05T10:00:00Z",
	}

	row := Row("42", tx)
	want := []any{"2024-01-05T10:00:00Z", "42", "tx-1", "Salary", "1000", "positive", "salary"}
	if len(row) != len(want) {
		t.Fatalf("row has %d cells, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Fatalf("cell %d = %v, want %v", i, row[i], want[i])
		}
	}
}
