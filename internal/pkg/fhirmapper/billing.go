package fhirmapper

import (
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/fhirjson"
	"strings"

	"github.com/tidwall/gjson"
)

// AccountFromFHIR maps an Account. The patient name starts as a
// placeholder; callers replace it once the patient has been looked up.
func AccountFromFHIR(resource gjson.Result, requestedPatientID string) responses.AccountInfo {
	patientID := lastSegment(fhirjson.String(resource, "subject.0.reference"))
	if patientID == "" {
		patientID = requestedPatientID
	}

	account := responses.AccountInfo{
		ID:                 fhirjson.String(resource, "id"),
		PatientID:          patientID,
		PatientName:        PlaceholderDisplay(constvars.ResourcePatient, patientID),
		OutstandingBalance: fhirjson.Float(resource, "outstandingBalance.0.value"),
		UnusedFunds:        fhirjson.Float(resource, "unusedFunds.0.value"),
		Status:             fhirjson.String(resource, "status"),
		Description:        fhirjson.String(resource, "businessUnitName.0"),
	}
	if account.Status == "" {
		account.Status = constvars.FhirAccountStatusActive
	}
	return account
}

func CoverageFromFHIR(resource gjson.Result, requestedPatientID string) responses.CoverageInfo {
	patientID := lastSegment(fhirjson.String(resource, "beneficiary.reference"))
	if patientID == "" {
		patientID = requestedPatientID
	}

	coverage := responses.CoverageInfo{
		ID:           fhirjson.String(resource, "id"),
		PatientID:    patientID,
		SubscriberID: fhirjson.String(fhirjson.Find(resource, "class", "type.coding.0.code", constvars.FhirCoverageClassPlan), "value"),
		Payor:        fhirjson.String(resource, "policyHolder.display"),
		Class:        fhirjson.String(fhirjson.Find(resource, "class", "type.coding.0.code", constvars.FhirCoverageClassGroup), "value"),
		Type:         fhirjson.FirstString(resource, "relationship.coding.0.display", "relationship.text"),
		Status:       fhirjson.String(resource, "status"),
	}
	if coverage.Payor == "" {
		coverage.Payor = constvars.UnknownPayor
	}
	if coverage.Type == "" {
		coverage.Type = constvars.UnknownCoverageType
	}
	if coverage.Status == "" {
		coverage.Status = constvars.FhirCoverageStatusUnknown
	}
	return coverage
}

func lastSegment(reference string) string {
	if _, id := ParseReference(reference); id != "" {
		return id
	}
	reference = strings.TrimRight(strings.TrimSpace(reference), "/")
	if index := strings.LastIndex(reference, "/"); index >= 0 {
		return reference[index+1:]
	}
	return reference
}
