package validators

// CheckIBAN performs structural IBAN validation: two-letter country code,
// two check digits, 15-34 uppercase alphanumerics overall, and the
// ISO 7064 mod-97-10 checksum over the rearranged string.
func CheckIBAN(iban string) bool {
	if len(iban) < 15 || len(iban) > 34 {
		return false
	}
	for i := 0; i < 2; i++ {
		if iban[i] < 'A' || iban[i] > 'Z' {
			return false
		}
	}
	for i := 2; i < 4; i++ {
		if iban[i] < '0' || iban[i] > '9' {
			return false
		}
	}

	// Move the first four characters to the end, map A-Z to 10-35 and take
	// the whole number mod 97 incrementally to avoid big-int arithmetic.
	rearranged := iban[4:] + iban[:4]
	remainder := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		switch {
		case c >= '0' && c <= '9':
			remainder = (remainder*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			remainder = (remainder*100 + v) % 97
		default:
			return false
		}
	}

	return remainder == 1
}
