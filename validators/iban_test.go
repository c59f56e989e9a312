package validators

import "testing"

func TestCheckIBAN(t *testing.T) {
	cases := []struct {
		iban  string
		valid bool
	}{
		{"DE91100000000123456789", true},
		{"GB82WEST12345698765432", true},
		{"PL61109010140000071219812874", true},
		{"FR1420041010050500013M02606", true},
		// Corrupted check digit.
		{"DE91100000000123456780", false},
		// Too short / malformed prefix.
		{"DE9110000", false},
		{"1291100000000123456789", false},
		{"DEAB100000000123456789", false},
		// Lowercase is not structurally valid.
		{"de91100000000123456789", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := CheckIBAN(tc.iban); got != tc.valid {
			t.Errorf("CheckIBAN(%q) = %v, want %v", tc.iban, got, tc.valid)
		}
	}
}
