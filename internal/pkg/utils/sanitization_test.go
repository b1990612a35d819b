package utils

import (
	"ehr-portal-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLoginRequest(t *testing.T) {
	request := &requests.Login{Email: "  ADMIN@Example.COM ", Password: " secret "}

	SanitizeLoginRequest(request)

	assert.Equal(t, "admin@example.com", request.Email, "email should be lowercase and trimmed")
	assert.Equal(t, " secret ", request.Password, "password must not be altered")
}

func TestSanitizeSignupRequest(t *testing.T) {
	request := &requests.Signup{Email: " Jane@Clinic.org", APIKey: " key ", AccessToken: "\ttoken\n"}

	SanitizeSignupRequest(request)

	assert.Equal(t, "jane@clinic.org", request.Email)
	assert.Equal(t, "key", request.APIKey)
	assert.Equal(t, "token", request.AccessToken)
}

func TestSanitizeCreatePatientRequest(t *testing.T) {
	t.Run("Name Sanitization", func(t *testing.T) {
		request := &requests.CreatePatient{Family: "  Doe ", Given: " Jane", BirthDate: " 1990-01-01 "}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "Doe", request.Family)
		assert.Equal(t, "Jane", request.Given)
		assert.Equal(t, "1990-01-01", request.BirthDate)
	})

	t.Run("Address Sanitization", func(t *testing.T) {
		request := &requests.CreatePatient{
			Address: &requests.Address{
				Line: []string{"  1 Main St ", "   ", " Apt 2"},
				City: " Springfield ",
			},
		}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, []string{"1 Main St", "Apt 2"}, request.Address.Line, "blank lines should be dropped")
		assert.Equal(t, "Springfield", request.Address.City)
	})
}

func TestSanitizeUpdatePatientRequest(t *testing.T) {
	family := "  Smith "
	email := "   "
	request := &requests.UpdatePatient{Family: &family, Email: &email}

	SanitizeUpdatePatientRequest(request)

	assert.Equal(t, "Smith", *request.Family)
	assert.Equal(t, "", *request.Email, "whitespace-only value becomes a clear")
	assert.Nil(t, request.Given, "absent fields stay absent")
	assert.Nil(t, request.Address)
}
