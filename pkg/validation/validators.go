package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Usernames: letters, digits, and the separators . _ - (3-32 chars)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,32}$`)

	// Allow letters, spaces, and common name punctuation: . ' -
	nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_username", ValidUsername)
	_ = v.RegisterValidation("valid_name", ValidName)
}

// ValidUsername validates account usernames against the allowed charset
func ValidUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

// ValidName validates that a string contains only valid name characters
// Rejects digits and most special symbols
func ValidName(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is the concern of the required tag
	}
	return nameRegex.MatchString(value)
}
