package validators

// CheckCard validates a card number with the Luhn checksum.
// Non-digit characters are ignored, so formatted input ("4111 1111 ...")
// is tolerated. Never panics; an empty or single-digit input simply checks
// the lone digit against an empty remainder.
func CheckCard(cardNumber string) bool {
	var digits []int
	for _, c := range cardNumber {
		if c >= '0' && c <= '9' {
			digits = append(digits, int(c-'0'))
		}
	}
	if len(digits) == 0 {
		return false
	}

	checksum := digits[len(digits)-1]
	rest := digits[:len(digits)-1]

	total := 0
	// Walk the remainder right to left: every other digit, starting with the
	// rightmost, is doubled (subtracting 9 when the result exceeds 9).
	for i := 0; i < len(rest); i++ {
		d := rest[len(rest)-1-i]
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		total += d
	}

	return (total*9)%10 == checksum
}
