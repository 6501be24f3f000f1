package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1000", "1000", true},
		{"12.34", "12.34", true},
		{"12,34", "12.34", true},
		{"0.01", "0.01", true},
		{"", "", false},
		{"0", "", false},
		{"-5", "", false},
		{"abc", "", false},
		{"1.2.3", "", false},
	}
	for _, tc := range cases {
		d, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseAmount(%q): expected ok, got %v", tc.in, err)
			}
			if want, _ := decimal.NewFromString(tc.want); !d.Equal(want) {
				t.Fatalf("ParseAmount(%q) = %s, want %s", tc.in, d, want)
			}
			continue
		}
		if err == nil {
			t.Fatalf("ParseAmount(%q): expected error", tc.in)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1000", "R$ 1.000,00"},
		{"400", "R$ 400,00"},
		{"600", "R$ 600,00"},
		{"0", "R$ 0,00"},
		{"12.34", "R$ 12,34"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"-400", "-R$ 400,00"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("bad fixture %q: %v", tc.in, err)
		}
		if got := FormatBRL(d); got != tc.want {
			t.Fatalf("FormatBRL(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
