package validators

import "testing"

func TestCheckCard(t *testing.T) {
	cases := []struct {
		card  string
		valid bool
	}{
		{"341111111111111", true},
		{"378282246310005", true},
		{"111111111111111111", false},
		{"111111111", false},
		{"371449635398431", true},
		{"6011000990139424", true},
		{"6011000990139425", false},
	}

	for _, tc := range cases {
		if got := CheckCard(tc.card); got != tc.valid {
			t.Errorf("CheckCard(%q) = %v, want %v", tc.card, got, tc.valid)
		}
	}
}

func TestCheckCardToleratesFormatting(t *testing.T) {
	if !CheckCard("3782 8224 6310 005") {
		t.Error("CheckCard should ignore spaces in otherwise valid input")
	}
}

func TestCheckCardShortInput(t *testing.T) {
	// A single digit pops itself as checksum; the empty remainder sums to 0
	// so only "0" passes.
	if !CheckCard("0") {
		t.Error(`CheckCard("0") = false, want true`)
	}
	if CheckCard("5") {
		t.Error(`CheckCard("5") = true, want false`)
	}
	if CheckCard("") {
		t.Error(`CheckCard("") = true, want false`)
	}
}
