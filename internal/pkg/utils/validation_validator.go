package utils

import (
	"ehr-portal-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validate     *validator.Validate
	emailPattern = regexp.MustCompile(constvars.RegexEmail)
	datePattern  = regexp.MustCompile(constvars.RegexDateOnly)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(labelTagName)
	validate.RegisterValidation("notblank", validators.NotBlank)
	validate.RegisterValidation("clearable_email", validateClearableEmail)
	validate.RegisterValidation("date_only", validateDateOnly)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// labelTagName names fields in validation errors by their label tag, then
// their json name.
func labelTagName(field reflect.StructField) string {
	if label := field.Tag.Get("label"); label != "" {
		return label
	}
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

// validateClearableEmail accepts an email or the empty string used to
// clear the stored value.
func validateClearableEmail(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || emailPattern.MatchString(value)
}

func validateDateOnly(fl validator.FieldLevel) bool {
	return datePattern.MatchString(fl.Field().String())
}
