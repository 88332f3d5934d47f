package core_test

import (
	"testing"

	"khata-backend/internal/core"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ali khan", "Ali Khan"},
		{"  ALI KHAN  ", "Ali Khan"},
		{"aLi", "Ali"},
		{"ali  khan", "Ali  Khan"},
		{"", ""},
		{"   ", ""},
		{"a", "A"},
		{"3 star traders", "3 Star Traders"},
		// Urdu has no case, names pass through unchanged apart from trimming.
		{"احمد سپلائرز", "احمد سپلائرز"},
		{"  محمد عمر ", "محمد عمر"},
	}
	for _, tc := range cases {
		if got := core.NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTrimName(t *testing.T) {
	if got := core.TrimName("  Small Cylinder "); got != "Small Cylinder" {
		t.Errorf("TrimName preserved inner casing incorrectly: %q", got)
	}
	if got := core.TrimName("  mIxEd CaSe "); got != "mIxEd CaSe" {
		t.Errorf("TrimName must not change case: %q", got)
	}
}

func TestSameName(t *testing.T) {
	if !core.SameName("Ali ", " ali") {
		t.Error("SameName should match case-insensitively after trimming")
	}
	if core.SameName("Ali", "Alia") {
		t.Error("SameName matched different names")
	}
}
