package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{".5", 50, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestParseBudgetAmountAllowsZero(t *testing.T) {
	got, err := ParseBudgetAmount("0")
	if err != nil || got != 0 {
		t.Fatalf("expected 0, got %d (err=%v)", got, err)
	}
	if _, err := ParseBudgetAmount("-5"); err == nil {
		t.Fatalf("expected error for negative budget")
	}
}

func TestMoneyString(t *testing.T) {
	cases := map[int64]string{
		0:     "0.00",
		5:     "0.05",
		1250:  "12.50",
		-305:  "-3.05",
		10000: "100.00",
	}
	for cents, want := range cases {
		if got := Cents(cents).String(); got != want {
			t.Fatalf("Cents(%d).String() = %q, want %q", cents, got, want)
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	cases := []struct {
		cents int64
		json  string
	}{
		{1250, "12.5"},
		{100, "1"},
		{1, "0.01"},
		{0, "0"},
		{-40, "-0.4"},
	}
	for _, tc := range cases {
		b, err := json.Marshal(Cents(tc.cents))
		if err != nil || string(b) != tc.json {
			t.Fatalf("marshal %d: got %s (err=%v), want %s", tc.cents, b, err, tc.json)
		}
		var m Money
		if err := json.Unmarshal(b, &m); err != nil || m.Cents != tc.cents {
			t.Fatalf("unmarshal %s: got %d (err=%v)", b, m.Cents, err)
		}
	}

	var m Money
	if err := json.Unmarshal([]byte(`"7.25"`), &m); err != nil || m.Cents != 725 {
		t.Fatalf("string amount: got %d (err=%v)", m.Cents, err)
	}
	if err := json.Unmarshal([]byte(`1e2`), &m); err != nil || m.Cents != 10000 {
		t.Fatalf("exponent amount: got %d (err=%v)", m.Cents, err)
	}
	if err := json.Unmarshal([]byte(`"abc"`), &m); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
}
