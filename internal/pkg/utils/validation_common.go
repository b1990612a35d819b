package utils

import (
	"ehr-portal-service/internal/pkg/constvars"
	"errors"
	"regexp"
)

var fhirIDPattern = regexp.MustCompile(constvars.RegexFhirID)

// ValidateUrlParamID checks a path id against the FHIR id grammar.
func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}
	if !fhirIDPattern.MatchString(param) {
		return errors.New("parameter is not a valid resource id")
	}
	return nil
}
