package report

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"payment-reports-api/models"
	"payment-reports-api/utils"
	"payment-reports-api/validators"
)

// Accepted created_at layouts: ISO-8601 with seconds optional, fractional
// seconds optional, offset or Z optional (naive timestamps read as UTC).
// A bare date is rejected.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05.999999Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04",
}

// typeNormalizers maps a payment-type tag to its type-specific validation,
// which returns the display payment mean for a valid item.
var typeNormalizers = map[string]func(item map[string]json.RawMessage, errs models.FieldErrors) (string, bool){
	models.TypeDirectPayment: normalizeDirectPayment,
	models.TypeCardPayment:   normalizeCardPayment,
	models.TypePayByLink:     normalizePayByLink,
}

// normalizeItem validates one raw payment item of the given type and shapes
// it into a report entry. On any validation failure it returns the per-field
// error map instead; PLN conversion is left to the caller so that invalid
// items never trigger a rate lookup.
func normalizeItem(typ string, raw json.RawMessage) (*models.ReportEntry, models.FieldErrors) {
	var item map[string]json.RawMessage
	if err := json.Unmarshal(raw, &item); err != nil || item == nil {
		return nil, models.FieldErrors{"non_field_errors": {msgNotADict}}
	}

	errs := models.FieldErrors{}

	createdAt, createdOK := datetimeField(item, errs)
	currency, currencyOK := currencyField(item, errs)
	amount, amountOK := amountField(item, errs)
	description, descriptionOK := stringField(item, errs, "description", models.MaxDescriptionLength)

	mean, meanOK := typeNormalizers[typ](item, errs)

	if !createdOK || !currencyOK || !amountOK || !descriptionOK || !meanOK {
		return nil, errs
	}

	return &models.ReportEntry{
		Date:        createdAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Type:        typ,
		PaymentMean: mean,
		Description: description,
		Currency:    currency,
		Amount:      amount,
		CreatedAt:   createdAt,
	}, nil
}

func normalizeDirectPayment(item map[string]json.RawMessage, errs models.FieldErrors) (string, bool) {
	iban, ok := stringField(item, errs, "iban", 34)
	if !ok {
		return "", false
	}
	if !validators.CheckIBAN(iban) {
		errs.Add("iban", msgInvalidIBAN)
		return "", false
	}
	return iban, true
}

func normalizeCardPayment(item map[string]json.RawMessage, errs models.FieldErrors) (string, bool) {
	name, nameOK := stringField(item, errs, "cardholder_name", models.MaxCardholderLength)
	// The surname is validated but never reached the display string; stored
	// reports pin the placeholder instead.
	_, surnameOK := stringField(item, errs, "cardholder_surname", models.MaxCardholderLength)
	number, numberOK := stringField(item, errs, "card_number", models.MaxCardNumberLength)
	if numberOK && !validators.CheckCard(number) {
		errs.Add("card_number", msgMalformedCard)
		numberOK = false
	}
	if !nameOK || !surnameOK || !numberOK {
		return "", false
	}
	mean := fmt.Sprintf("%s %s %s", name, models.CardSurnamePlaceholder, utils.MaskCardNumber(number))
	return mean, true
}

func normalizePayByLink(item map[string]json.RawMessage, errs models.FieldErrors) (string, bool) {
	return stringField(item, errs, "bank", models.MaxBankLength)
}

func stringField(item map[string]json.RawMessage, errs models.FieldErrors, name string, maxLen int) (string, bool) {
	raw, present := item[name]
	if !present {
		errs.Add(name, msgRequired)
		return "", false
	}
	if string(raw) == "null" {
		errs.Add(name, msgNull)
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		errs.Add(name, msgNotString)
		return "", false
	}
	if s == "" {
		errs.Add(name, msgBlank)
		return "", false
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		errs.Add(name, fmt.Sprintf(msgMaxLength, maxLen))
		return "", false
	}
	return s, true
}

func datetimeField(item map[string]json.RawMessage, errs models.FieldErrors) (time.Time, bool) {
	raw, present := item["created_at"]
	if !present {
		errs.Add("created_at", msgRequired)
		return time.Time{}, false
	}
	if string(raw) == "null" {
		errs.Add("created_at", msgNull)
		return time.Time{}, false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		errs.Add("created_at", msgDatetime)
		return time.Time{}, false
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	errs.Add("created_at", msgDatetime)
	return time.Time{}, false
}

func currencyField(item map[string]json.RawMessage, errs models.FieldErrors) (string, bool) {
	raw, present := item["currency"]
	if !present {
		errs.Add("currency", msgRequired)
		return "", false
	}
	if string(raw) == "null" {
		errs.Add("currency", msgNull)
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		errs.Add("currency", msgNotString)
		return "", false
	}
	if !models.IsSupportedCurrency(s) {
		errs.Add("currency", fmt.Sprintf(msgInvalidChoice, s))
		return "", false
	}
	return s, true
}

func amountField(item map[string]json.RawMessage, errs models.FieldErrors) (int64, bool) {
	raw, present := item["amount"]
	if !present {
		errs.Add("amount", msgRequired)
		return 0, false
	}
	if string(raw) == "null" {
		errs.Add("amount", msgNull)
		return 0, false
	}
	var v int64
	if err := json.Unmarshal(raw, &v); err != nil {
		errs.Add("amount", msgInteger)
		return 0, false
	}
	if v < 0 {
		errs.Add("amount", msgMinValue)
		return 0, false
	}
	return v, true
}
