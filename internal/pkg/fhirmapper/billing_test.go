package fhirmapper

import (
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/fhirjson"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountFromFHIR(t *testing.T) {
	raw := []byte(`{
		"resourceType": "Account",
		"id": "acc-1",
		"status": "active",
		"subject": [{"reference": "https://vendor.example/fhir/Patient/55"}],
		"outstandingBalance": [{"value": 125.5}],
		"businessUnitName": ["Main Clinic"]
	}`)

	assert.Equal(t, responses.AccountInfo{
		ID:                 "acc-1",
		PatientID:          "55",
		PatientName:        "Patient 55",
		OutstandingBalance: 125.5,
		Status:             "active",
		Description:        "Main Clinic",
	}, AccountFromFHIR(fhirjson.Parse(raw), "99"))
}

func TestAccountFromFHIRFallsBackToRequestedPatient(t *testing.T) {
	account := AccountFromFHIR(fhirjson.Parse([]byte(`{"id":"acc-2"}`)), "99")
	assert.Equal(t, "99", account.PatientID)
	assert.Equal(t, "Patient 99", account.PatientName)
	assert.Equal(t, "active", account.Status)
	assert.Zero(t, account.OutstandingBalance)
}

func TestCoverageFromFHIR(t *testing.T) {
	raw := []byte(`{
		"resourceType": "Coverage",
		"id": "cov-1",
		"status": "active",
		"beneficiary": {"reference": "Patient/55"},
		"policyHolder": {"display": "Acme Health"},
		"relationship": {"coding": [{"display": "Self"}]},
		"class": [
			{"type": {"coding": [{"code": "group"}]}, "value": "GRP-1"},
			{"type": {"coding": [{"code": "plan"}]}, "value": "PLN-7"}
		]
	}`)

	assert.Equal(t, responses.CoverageInfo{
		ID:           "cov-1",
		PatientID:    "55",
		SubscriberID: "PLN-7",
		Payor:        "Acme Health",
		Class:        "GRP-1",
		Type:         "Self",
		Status:       "active",
	}, CoverageFromFHIR(fhirjson.Parse(raw), "55"))
}

func TestCoverageFromFHIRPlaceholders(t *testing.T) {
	coverage := CoverageFromFHIR(fhirjson.Parse([]byte(`{"id":"cov-2"}`)), "8")
	assert.Equal(t, "8", coverage.PatientID)
	assert.Equal(t, "Unknown", coverage.Payor)
	assert.Equal(t, "Unknown", coverage.Type)
	assert.Equal(t, "unknown", coverage.Status)
}
