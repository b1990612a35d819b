package exceptions

import (
	"ehr-portal-service/internal/pkg/constvars"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// FormatValidationError reports every missing required field in one
// sentence ("Patient ID and code are required"). When nothing is missing
// the first failing rule is reported instead.
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	var missing []string
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			missing = append(missing, fieldErr.Field())
		}
	}
	if len(missing) > 0 {
		return FormatMissingFields(missing)
	}
	return formatFieldError(validationErrors[0])
}

// FormatMissingFields joins labels into "A is required", "A and B are
// required" or "A, B, and C are required".
func FormatMissingFields(labels []string) string {
	var sentence string
	switch len(labels) {
	case 0:
		return constvars.ErrClientCannotProcessRequest
	case 1:
		return capitalize(labels[0]) + " is required"
	case 2:
		sentence = labels[0] + " and " + labels[1]
	default:
		sentence = strings.Join(labels[:len(labels)-1], ", ") + ", and " + labels[len(labels)-1]
	}
	return capitalize(sentence) + " are required"
}

func formatFieldError(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
	}
	return capitalize(fieldErr.Field()) + " " + customMessage
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
