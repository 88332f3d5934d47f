package app

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseID(t *testing.T) {
	id, err := parseID("client id", " 42 ")
	if err != nil || id != 42 {
		t.Errorf("parseID(\" 42 \") = %d, %v", id, err)
	}

	for _, bad := range []string{"", "0", "-1", "abc", "1.5"} {
		if _, err := parseID("client id", bad); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("parseID(%q) = %v, want ErrInvalidInput", bad, err)
		}
	}
}

func TestParseAmount(t *testing.T) {
	// Blank optional money fields mean zero.
	d, err := parseAmount("paid", "")
	if err != nil || !d.IsZero() {
		t.Errorf("parseAmount(\"\") = %s, %v", d, err)
	}

	d, err = parseAmount("paid", " 1500.50 ")
	if err != nil || !d.Equal(decimal.NewFromFloat(1500.50)) {
		t.Errorf("parseAmount(\"1500.50\") = %s, %v", d, err)
	}

	d, err = parseAmount("paid", "-200")
	if err != nil || !d.Equal(decimal.NewFromInt(-200)) {
		t.Errorf("parseAmount(\"-200\") = %s, %v", d, err)
	}

	if _, err := parseAmount("paid", "12abc"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("parseAmount(\"12abc\") = %v, want ErrInvalidInput", err)
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-08-01")
	if err != nil || got != "2026-08-01" {
		t.Errorf("parseDate = %q, %v", got, err)
	}

	today, err := parseDate("  ")
	if err != nil {
		t.Fatalf("parseDate blank = %v", err)
	}
	if today != time.Now().Format("2006-01-02") {
		t.Errorf("parseDate blank = %q, want today", today)
	}

	for _, bad := range []string{"01-08-2026", "2026/08/01", "2026-13-01", "yesterday"} {
		if _, err := parseDate(bad); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("parseDate(%q) = %v, want ErrInvalidInput", bad, err)
		}
	}
}

func TestParseMonth(t *testing.T) {
	got, err := parseMonth("2026-08")
	if err != nil || got != "2026-08" {
		t.Errorf("parseMonth = %q, %v", got, err)
	}
	if _, err := parseMonth("2026-8"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("parseMonth(\"2026-8\") = %v, want ErrInvalidInput", err)
	}
	if m, err := parseMonth(""); err != nil || m != time.Now().Format("2006-01") {
		t.Errorf("parseMonth blank = %q, %v", m, err)
	}
}

func TestOptString(t *testing.T) {
	if p := optString("  "); p != nil {
		t.Errorf("optString blank = %v, want nil", p)
	}
	if p := optString(" 0300-1234567 "); p == nil || *p != "0300-1234567" {
		t.Errorf("optString = %v", p)
	}
}
