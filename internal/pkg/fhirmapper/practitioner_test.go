package fhirmapper

import (
	"ehr-portal-service/internal/pkg/fhirjson"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPractitionerFromFHIR(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantName   string
		wantActive bool
	}{
		{"name text wins", `{"id":"1","name":[{"text":"Dr. A B","family":"B"}]}`, "Dr. A B", true},
		{"given and family", `{"id":"2","name":[{"given":["Ann","Marie"],"family":"Lee"}],"active":false}`, "Ann Marie Lee", false},
		{"no name", `{"id":"3"}`, "Unknown Practitioner", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			practitioner := PractitionerFromFHIR(fhirjson.Parse([]byte(tt.raw)))
			assert.Equal(t, tt.wantName, practitioner.Name)
			assert.Equal(t, tt.wantActive, practitioner.Active)
		})
	}
}

func TestPractitionerContactPoints(t *testing.T) {
	raw := `{"id":"1","telecom":[{"system":"phone","value":"555"},{"system":"email","value":"a@b.c"}]}`
	practitioner := PractitionerFromFHIR(fhirjson.Parse([]byte(raw)))
	assert.Equal(t, "555", practitioner.Phone)
	assert.Equal(t, "a@b.c", practitioner.Email)
}
