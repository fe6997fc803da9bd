package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("patient_name", validatePatientName)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validatePatientName rejects empty or whitespace-only names and names that
// would break the backend query string.
func validatePatientName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, "\r\n")
}
