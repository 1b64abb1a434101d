package store

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	phoneCleaner = strings.NewReplacer("-", "", " ", "")
)

// newValidator panics if a custom rule cannot be registered; a missing rule would
// otherwise panic later on the first struct that uses its tag.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	}); err != nil {
		panic("store: register phone validation: " + err.Error())
	}
	return v
}

// CleanPhone strips spaces and dashes, which is the form phone numbers are stored in.
func CleanPhone(phone string) string {
	return phoneCleaner.Replace(strings.TrimSpace(phone))
}

// IsValidPhone accepts ten digits, ignoring spaces and dashes.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(CleanPhone(phone))
}
