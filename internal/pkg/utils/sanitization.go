package utils

import (
	"ehr-portal-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			sanitizedArray = append(sanitizedArray, trimmed)
		}
	}
	return sanitizedArray
}

func trimPointer(input *string) {
	if input != nil {
		*input = strings.TrimSpace(*input)
	}
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeSignupRequest(input *requests.Signup) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.APIKey = strings.TrimSpace(input.APIKey)
	input.AccessToken = strings.TrimSpace(input.AccessToken)
}

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.Family = strings.TrimSpace(input.Family)
	input.Given = strings.TrimSpace(input.Given)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)

	if input.Address != nil {
		input.Address.Line = cleanWhiteSpaceFromEachStringOfAnArray(input.Address.Line)
		input.Address.City = strings.TrimSpace(input.Address.City)
		input.Address.State = strings.TrimSpace(input.Address.State)
		input.Address.PostalCode = strings.TrimSpace(input.Address.PostalCode)
		input.Address.Country = strings.TrimSpace(input.Address.Country)
	}
}

// SanitizeUpdatePatientRequest trims supplied fields only; nil stays nil.
func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	trimPointer(input.Family)
	trimPointer(input.Given)
	trimPointer(input.BirthDate)
	trimPointer(input.Email)
	trimPointer(input.Phone)

	if input.Address != nil {
		if input.Address.Line != nil {
			input.Address.Line = cleanWhiteSpaceFromEachStringOfAnArray(input.Address.Line)
		}
		trimPointer(input.Address.City)
		trimPointer(input.Address.State)
		trimPointer(input.Address.PostalCode)
		trimPointer(input.Address.Country)
	}
}
