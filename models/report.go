package models

import "time"

// ReportEntry is one normalized payment as it appears in a generated report.
// Field order matches the serialized report shape.
type ReportEntry struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	PaymentMean string `json:"payment_mean"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	AmountInPLN *int64 `json:"amount_in_pln"`

	// CreatedAt keeps the parsed instant for the chronological merge; the
	// serialized form only carries Date.
	CreatedAt time.Time `json:"-"`
}
