package utils

import "strings"

// MaskCardNumber keeps the first and last four characters of a card number
// and replaces everything in between with '*'. Inputs shorter than eight
// characters come back unchanged (the masked middle is empty).
func MaskCardNumber(cardNumber string) string {
	if len(cardNumber) <= 8 {
		return cardNumber
	}
	return cardNumber[:4] + strings.Repeat("*", len(cardNumber)-8) + cardNumber[len(cardNumber)-4:]
}
