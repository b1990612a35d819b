package fhirmapper

import (
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/fhirjson"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientRoundTrip(t *testing.T) {
	request := &requests.CreatePatient{
		Family:    "Doe",
		Given:     "Jane",
		BirthDate: "1990-04-01",
		Email:     "jane@example.com",
		Phone:     "555-0100",
		Address: &requests.Address{
			Line:       []string{"1 Main St"},
			City:       "Springfield",
			PostalCode: "12345",
		},
	}

	resource := PatientToFHIR(request)
	resource.ID = "42"
	raw, err := json.Marshal(resource)
	require.NoError(t, err)

	got := PatientFromFHIR(fhirjson.Parse(raw))
	want := responses.Patient{
		ID:        "42",
		Family:    "Doe",
		Given:     "Jane",
		BirthDate: "1990-04-01",
		Email:     "jane@example.com",
		Phone:     "555-0100",
		Address: &responses.Address{
			Line:       []string{"1 Main St"},
			City:       "Springfield",
			PostalCode: "12345",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PatientFromFHIR mismatch (-want +got):\n%s", diff)
	}
}

func TestVendorPatientRoundTrip(t *testing.T) {
	stored := []byte(`{
		"resourceType": "Patient",
		"id": "1",
		"name": [{"family": "Doe", "given": ["Jane"]}],
		"telecom": [
			{"system": "phone", "value": "555-0100", "use": "mobile"},
			{"system": "email", "value": "jane@example.com"}
		],
		"birthDate": "1990-04-01"
	}`)

	view := PatientFromFHIR(fhirjson.Parse(stored))
	raw, err := json.Marshal(PatientToFHIR(&requests.CreatePatient{
		Family:    view.Family,
		Given:     view.Given,
		BirthDate: view.BirthDate,
		Email:     view.Email,
		Phone:     view.Phone,
	}))
	require.NoError(t, err)

	var want, got map[string]any
	require.NoError(t, json.Unmarshal(stored, &want))
	require.NoError(t, json.Unmarshal(raw, &got))
	for _, field := range []string{"name", "telecom", "birthDate"} {
		if diff := cmp.Diff(want[field], got[field]); diff != "" {
			t.Errorf("%s mismatch after round trip (-vendor +rebuilt):\n%s", field, diff)
		}
	}
}

func TestPatientToFHIRShape(t *testing.T) {
	raw, err := json.Marshal(PatientToFHIR(&requests.CreatePatient{
		Family:    "Doe",
		Given:     "John",
		BirthDate: "1980-01-01",
		Phone:     "555-0101",
	}))
	require.NoError(t, err)

	parsed := fhirjson.Parse(raw)
	assert.Equal(t, "Patient", fhirjson.String(parsed, "resourceType"))
	assert.Equal(t, "John", fhirjson.String(parsed, "name.0.given.0"))
	assert.Equal(t, "mobile", fhirjson.String(parsed, "telecom.0.use"))
	assert.Len(t, fhirjson.Array(parsed, "telecom"), 1)
	assert.False(t, parsed.Get("address").Exists())
}

func TestPatientFromFHIRTolerance(t *testing.T) {
	got := PatientFromFHIR(fhirjson.Parse([]byte(`{"id":"7","name":[],"telecom":null}`)))
	assert.Equal(t, responses.Patient{ID: "7"}, got)
}

func TestMergePatient(t *testing.T) {
	current := func() map[string]any {
		var resource map[string]any
		err := json.Unmarshal([]byte(`{
			"resourceType": "Patient",
			"id": "42",
			"gender": "female",
			"identifier": [{"system": "urn:mrn", "value": "A-1"}],
			"name": [{"family": "Doe", "given": ["Jane", "Q"]}],
			"telecom": [
				{"system": "phone", "value": "555-0100", "use": "mobile"},
				{"system": "email", "value": "jane@example.com"}
			],
			"birthDate": "1990-04-01"
		}`), &resource)
		require.NoError(t, err)
		return resource
	}

	t.Run("nil fields keep current values", func(t *testing.T) {
		family := "Smith"
		merged, err := MergePatient(current(), "42", &requests.UpdatePatient{Family: &family})
		require.NoError(t, err)

		raw, _ := json.Marshal(merged)
		parsed := fhirjson.Parse(raw)
		assert.Equal(t, "Smith", fhirjson.String(parsed, "name.0.family"))
		assert.Equal(t, []string{"Jane", "Q"}, fhirjson.Strings(parsed, "name.0.given"))
		assert.Equal(t, "1990-04-01", fhirjson.String(parsed, "birthDate"))
		assert.Equal(t, "jane@example.com", fhirjson.String(fhirjson.Find(parsed, "telecom", "system", "email"), "value"))
		assert.Equal(t, "female", fhirjson.String(parsed, "gender"))
		assert.Equal(t, "A-1", fhirjson.String(parsed, "identifier.0.value"))
	})

	t.Run("given replaces only the first given name", func(t *testing.T) {
		given := "Janet"
		merged, err := MergePatient(current(), "42", &requests.UpdatePatient{Given: &given})
		require.NoError(t, err)

		raw, _ := json.Marshal(merged)
		assert.Equal(t, []string{"Janet", "Q"}, fhirjson.Strings(fhirjson.Parse(raw), "name.0.given"))
	})

	t.Run("empty optional value clears it", func(t *testing.T) {
		empty := ""
		merged, err := MergePatient(current(), "42", &requests.UpdatePatient{Email: &empty})
		require.NoError(t, err)

		raw, _ := json.Marshal(merged)
		parsed := fhirjson.Parse(raw)
		assert.False(t, fhirjson.Find(parsed, "telecom", "system", "email").Exists())
		assert.Equal(t, "555-0100", fhirjson.String(fhirjson.Find(parsed, "telecom", "system", "phone"), "value"))
	})

	t.Run("new optional value is appended", func(t *testing.T) {
		city := "Springfield"
		resource := current()
		delete(resource, "telecom")
		phone := "555-0199"

		merged, err := MergePatient(resource, "42", &requests.UpdatePatient{
			Phone:   &phone,
			Address: &requests.AddressPatch{City: &city},
		})
		require.NoError(t, err)

		raw, _ := json.Marshal(merged)
		parsed := fhirjson.Parse(raw)
		assert.Equal(t, "mobile", fhirjson.String(parsed, "telecom.0.use"))
		assert.Equal(t, "Springfield", fhirjson.String(parsed, "address.0.city"))
	})

	t.Run("empty required value is rejected", func(t *testing.T) {
		empty := ""
		_, err := MergePatient(current(), "42", &requests.UpdatePatient{Family: &empty})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("id in path wins", func(t *testing.T) {
		merged, err := MergePatient(current(), "99", &requests.UpdatePatient{})
		require.NoError(t, err)
		assert.Equal(t, "99", merged["id"])
	})
}
