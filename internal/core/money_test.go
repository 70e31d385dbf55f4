package core

import "testing"

func TestParseRupees(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 1, true},
		{"12,000", 12000, true},
		{"-3000", -3000, true},
		{"+250", 250, true},
		{"₹500", 500, true},
		{"-₹1,500", -1500, true},
		{" 0 ", 0, true},
		{"1_000", 1000, true},
		{"12.5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseRupees(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestFormatRupees(t *testing.T) {
	cases := map[int64][2]string{
		0:       {"₹0", "+₹0"},
		12000:   {"₹12,000", "+₹12,000"},
		-3000:   {"-₹3,000", "-₹3,000"},
		1234567: {"₹1,234,567", "+₹1,234,567"},
	}
	for in, want := range cases {
		if got := FormatRupees(in); got != want[0] {
			t.Fatalf("FormatRupees(%d) = %q, want %q", in, got, want[0])
		}
		if got := FormatSignedRupees(in); got != want[1] {
			t.Fatalf("FormatSignedRupees(%d) = %q, want %q", in, got, want[1])
		}
	}
}
