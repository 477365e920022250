package intake

// User-facing error copy, kept word-for-word with the site.
const (
	msgPostalMissing   = "Please enter your postal code."
	msgPostalInvalid   = "Please enter a valid Canadian postal code (example: K1K 4W3)."
	msgPhoneInvalid    = "Please enter a valid phone number (10 digits)."
	msgEmailInvalid    = "Please enter a valid email address."
	msgContactMissing  = "Please fill in your contact details."
	msgRequiredMissing = "Please fill in all required fields."
	msgGenericFailure  = "Something went wrong. Please call us or try again in a minute."
)
