package report

// Validation messages, kept word-for-word compatible with the responses
// clients already consume.
const (
	msgRequired      = "This field is required."
	msgNull          = "This field may not be null."
	msgBlank         = "This field may not be blank."
	msgMaxLength     = "Ensure this field has no more than %d characters."
	msgMinValue      = "Ensure this value is greater than or equal to 0."
	msgInvalidChoice = "%q is not a valid choice."
	msgInteger       = "A valid integer is required."
	msgNotString     = "Not a valid string."
	msgDatetime      = "Datetime has wrong format. Use one of these formats instead: YYYY-MM-DDThh:mm[:ss[.uuuuuu]][+HH:MM|-HH:MM|Z]."
	msgMalformedCard = "Malformed card number"
	msgInvalidIBAN   = "Invalid IBAN."
	msgNotADict      = "Invalid data. Expected a dictionary."
)
