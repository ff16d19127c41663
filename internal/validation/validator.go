package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("year_month", validateYearMonth)
	_ = v.RegisterValidation("district_code", validateDistrictCode)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateYearMonth validates a 6-digit YYYYMM period identifier
func validateYearMonth(fl validator.FieldLevel) bool {
	yearMonth := fl.Field().String()
	if yearMonth == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^\d{4}(0[1-9]|1[0-2])$`, yearMonth)
	return matched
}

// validateDistrictCode validates the 5-digit Seoul district code format
func validateDistrictCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if code == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^11\d{3}$`, code)
	return matched
}
