package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Deliberately loose email shape: something@something.something with no
// whitespace. Full RFC validation rejects addresses real users type, so the
// contact form only guards against obvious typos.
var looseEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("loose_email", LooseEmail)
}

// LooseEmail validates the local@domain.tld shape without enforcing RFC rules
func LooseEmail(fl validator.FieldLevel) bool {
	return looseEmailRegex.MatchString(fl.Field().String())
}
