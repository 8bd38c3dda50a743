package money

import "testing"

func TestToCents(t *testing.T) {
	cases := []struct {
		major float64
		want  int64
	}{
		{10.50, 1050},
		{0, 0},
		{0.01, 1},
		{1234.56, 123456},
		{10.505, 1051},  // half-up
		{10.494, 1049},  // rounds down
		{-10.50, -1050}, // sign preserved for display math
	}
	for _, c := range cases {
		if got := ToCents(c.major); got != c.want {
			t.Errorf("ToCents(%v) = %d, want %d", c.major, got, c.want)
		}
	}
}

func TestParseDecimalToCents(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cases := []struct {
			in   string
			want int64
		}{
			{"10.50", 1050},
			{"10,50", 1050},
			{"0", 0},
			{"7", 700},
			{".99", 99},
			{"10.505", 1051},
			{"10.504", 1050},
			{" 12,34 ", 1234},
		}
		for _, c := range cases {
			got, err := ParseDecimalToCents(c.in)
			if err != nil {
				t.Errorf("ParseDecimalToCents(%q) unexpected error: %v", c.in, err)
				continue
			}
			if got != c.want {
				t.Errorf("ParseDecimalToCents(%q) = %d, want %d", c.in, got, c.want)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, in := range []string{"", "abc", "-10.50", "+10", "1.2.3", "10,5x"} {
			if _, err := ParseDecimalToCents(in); err == nil {
				t.Errorf("ParseDecimalToCents(%q) expected error, got nil", in)
			}
		}
	})
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1050, "R$ 10,50"},
		{0, "R$ 0,00"},
		{1, "R$ 0,01"},
		{123456, "R$ 1.234,56"},
		{100000000, "R$ 1.000.000,00"},
		{-1050, "R$ -10,50"},
		{300, "R$ 3,00"},
	}
	for _, c := range cases {
		if got := FormatBRL(c.cents); got != c.want {
			t.Errorf("FormatBRL(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}

// Posting an account with initial_balance=10.50 must store 1050 cents
// and display back as "R$ 10,50".
func TestMajorUnitsRoundTrip(t *testing.T) {
	cents := ToCents(10.50)
	if cents != 1050 {
		t.Fatalf("expected 1050 cents, got %d", cents)
	}
	if got := FormatBRL(cents); got != "R$ 10,50" {
		t.Fatalf("expected R$ 10,50, got %q", got)
	}
}
