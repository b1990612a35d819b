package fhirmapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractReferenceID(t *testing.T) {
	tests := []struct {
		name         string
		reference    string
		resourceType string
		want         string
	}{
		{"relative", "Patient/123", "Patient", "123"},
		{"absolute", "https://vendor.example/ema/fhir/v2/Patient/123", "Patient", "123"},
		{"alphanumeric", "Practitioner/abc-42.x", "Practitioner", "abc-42.x"},
		{"versioned", "Patient/9/_history/3", "Patient", "9"},
		{"wrong type", "Practitioner/123", "Patient", ""},
		{"missing id", "Patient/", "Patient", ""},
		{"bare id", "123", "Patient", ""},
		{"empty", "", "Patient", ""},
		{"type only as suffix", "SomePatient/1", "Patient", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractReferenceID(tt.reference, tt.resourceType))
		})
	}
}

func TestPlaceholderDisplay(t *testing.T) {
	assert.Equal(t, "Location 604", PlaceholderDisplay("Location", "604"))
	assert.Equal(t, "", PlaceholderDisplay("Location", ""))
}
