package models

// PLN is the home currency; amounts in PLN need no conversion.
const PLN = "PLN"

// SupportedCurrencies is the accepted set of ISO currency codes.
var SupportedCurrencies = map[string]struct{}{
	"EUR": {},
	"USD": {},
	"GBP": {},
	PLN:   {},
}

func IsSupportedCurrency(code string) bool {
	_, ok := SupportedCurrencies[code]
	return ok
}
