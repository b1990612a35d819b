package fhirmapper

import (
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/fhirjson"
	"strings"

	"github.com/tidwall/gjson"
)

func PractitionerFromFHIR(resource gjson.Result) responses.Practitioner {
	name := PractitionerDisplayName(resource)
	if name == "" {
		name = constvars.UnknownPractitionerName
	}
	return responses.Practitioner{
		ID:     fhirjson.String(resource, "id"),
		Name:   name,
		Email:  fhirjson.String(fhirjson.Find(resource, "telecom", "system", constvars.FhirContactPointSystemEmail), "value"),
		Phone:  fhirjson.String(fhirjson.Find(resource, "telecom", "system", constvars.FhirContactPointSystemPhone), "value"),
		Active: fhirjson.Bool(resource, "active", true),
	}
}

// PractitionerDisplayName prefers the vendor's name text, then all given
// names followed by the family name.
func PractitionerDisplayName(resource gjson.Result) string {
	name := fhirjson.First(resource, "name")
	if text := fhirjson.String(name, "text"); text != "" {
		return text
	}
	parts := fhirjson.Strings(name, "given")
	if family := fhirjson.String(name, "family"); family != "" {
		parts = append(parts, family)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
