package models

import "encoding/json"

// Payload keys / discriminator values for the three supported payment types.
const (
	TypeDirectPayment = "dp"
	TypeCardPayment   = "card"
	TypePayByLink     = "pay_by_link"
)

// CardSurnamePlaceholder is what the card payment mean carries in place of the
// cardholder surname. The surname was never wired into the display string and
// every stored report already contains the literal "None" there.
// TODO: switch to the real surname once persisted reports can be regenerated.
const CardSurnamePlaceholder = "None"

// Field length caps, in characters.
const (
	MaxDescriptionLength = 300
	MaxBankLength        = 256
	MaxCardholderLength  = 256
	MaxCardNumberLength  = 16
)

// ReportRequest is the raw submission body. Items stay as raw JSON so the
// normalizer can tell absent, null and mistyped fields apart per item.
type ReportRequest struct {
	CustomerID *string           `json:"customer_id"`
	Direct     []json.RawMessage `json:"dp"`
	Card       []json.RawMessage `json:"card"`
	PayByLink  []json.RawMessage `json:"pay_by_link"`
}

// FieldErrors maps a field name to the validation messages recorded for it
// on a single payment item.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}
