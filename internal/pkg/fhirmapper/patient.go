package fhirmapper

import (
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/fhir_dto"
	"ehr-portal-service/internal/pkg/fhirjson"
	"strings"

	"github.com/tidwall/gjson"
)

func PatientFromFHIR(resource gjson.Result) responses.Patient {
	name := fhirjson.First(resource, "name")
	patient := responses.Patient{
		ID:        fhirjson.String(resource, "id"),
		Family:    fhirjson.String(name, "family"),
		Given:     fhirjson.String(name, "given.0"),
		BirthDate: fhirjson.String(resource, "birthDate"),
		Email:     fhirjson.String(fhirjson.Find(resource, "telecom", "system", constvars.FhirContactPointSystemEmail), "value"),
		Phone:     fhirjson.String(fhirjson.Find(resource, "telecom", "system", constvars.FhirContactPointSystemPhone), "value"),
	}

	address := fhirjson.First(resource, "address")
	if address.IsObject() {
		view := &responses.Address{
			Line:       fhirjson.Strings(address, "line"),
			City:       fhirjson.String(address, "city"),
			State:      fhirjson.String(address, "state"),
			PostalCode: fhirjson.String(address, "postalCode"),
			Country:    fhirjson.String(address, "country"),
		}
		if !isEmptyAddress(view) {
			patient.Address = view
		}
	}
	return patient
}

func PatientToFHIR(request *requests.CreatePatient) fhir_dto.Patient {
	patient := fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		Name: []fhir_dto.HumanName{
			{
				Family: request.Family,
				Given:  []string{request.Given},
			},
		},
		BirthDate: request.BirthDate,
	}

	if request.Phone != "" {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{
			System: constvars.FhirContactPointSystemPhone,
			Value:  request.Phone,
			Use:    constvars.FhirContactPointUseMobile,
		})
	}
	if request.Email != "" {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{
			System: constvars.FhirContactPointSystemEmail,
			Value:  request.Email,
		})
	}

	if request.Address != nil {
		address := fhir_dto.Address{
			Line:       request.Address.Line,
			City:       request.Address.City,
			State:      request.Address.State,
			PostalCode: request.Address.PostalCode,
			Country:    request.Address.Country,
		}
		if len(address.Line) > 0 || address.City != "" || address.State != "" || address.PostalCode != "" || address.Country != "" {
			patient.Address = []fhir_dto.Address{address}
		}
	}
	return patient
}

// PatientDisplayName is "given family" from the first name entry.
func PatientDisplayName(resource gjson.Result) string {
	name := fhirjson.First(resource, "name")
	if text := fhirjson.String(name, "text"); text != "" {
		return text
	}
	return strings.TrimSpace(fhirjson.String(name, "given.0") + " " + fhirjson.String(name, "family"))
}

// MergePatient overlays an update onto the stored vendor resource. Fields
// this layer does not model are carried over untouched.
func MergePatient(current map[string]any, id string, request *requests.UpdatePatient) (map[string]any, error) {
	merged := current
	if merged == nil {
		merged = map[string]any{}
	}
	merged["resourceType"] = constvars.ResourcePatient
	merged["id"] = id

	if request.Family != nil || request.Given != nil {
		names := objectSlice(merged["name"])
		if len(names) == 0 {
			names = []map[string]any{{}}
		}
		name := names[0]
		if request.Family != nil {
			if strings.TrimSpace(*request.Family) == "" {
				return nil, exceptions.ErrRequiredFieldCleared(nil, "Family name")
			}
			name["family"] = *request.Family
		}
		if request.Given != nil {
			if strings.TrimSpace(*request.Given) == "" {
				return nil, exceptions.ErrRequiredFieldCleared(nil, "Given name")
			}
			given := anySlice(name["given"])
			if len(given) == 0 {
				given = []any{*request.Given}
			} else {
				given[0] = *request.Given
			}
			name["given"] = given
		}
		merged["name"] = toAnySlice(names)
	}

	if request.BirthDate != nil {
		if strings.TrimSpace(*request.BirthDate) == "" {
			return nil, exceptions.ErrRequiredFieldCleared(nil, "Birth date")
		}
		merged["birthDate"] = *request.BirthDate
	}

	if request.Phone != nil {
		setTelecom(merged, constvars.FhirContactPointSystemPhone, *request.Phone, constvars.FhirContactPointUseMobile)
	}
	if request.Email != nil {
		setTelecom(merged, constvars.FhirContactPointSystemEmail, *request.Email, "")
	}

	if request.Address != nil {
		mergeAddress(merged, request.Address)
	}
	return merged, nil
}

func setTelecom(resource map[string]any, system, value, use string) {
	telecoms := objectSlice(resource["telecom"])
	index := -1
	for i, telecom := range telecoms {
		if telecom["system"] == system {
			index = i
			break
		}
	}

	switch {
	case value == "" && index >= 0:
		telecoms = append(telecoms[:index], telecoms[index+1:]...)
	case value == "":
	case index >= 0:
		telecoms[index]["value"] = value
	default:
		entry := map[string]any{"system": system, "value": value}
		if use != "" {
			entry["use"] = use
		}
		telecoms = append(telecoms, entry)
	}

	if len(telecoms) == 0 {
		delete(resource, "telecom")
		return
	}
	resource["telecom"] = toAnySlice(telecoms)
}

func mergeAddress(resource map[string]any, patch *requests.AddressPatch) {
	addresses := objectSlice(resource["address"])
	if len(addresses) == 0 {
		addresses = []map[string]any{{}}
	}
	address := addresses[0]

	if patch.Line != nil {
		if len(patch.Line) == 0 {
			delete(address, "line")
		} else {
			lines := make([]any, 0, len(patch.Line))
			for _, line := range patch.Line {
				lines = append(lines, line)
			}
			address["line"] = lines
		}
	}
	setOptional(address, "city", patch.City)
	setOptional(address, "state", patch.State)
	setOptional(address, "postalCode", patch.PostalCode)
	setOptional(address, "country", patch.Country)

	if len(address) == 0 {
		addresses = addresses[1:]
	}
	if len(addresses) == 0 {
		delete(resource, "address")
		return
	}
	resource["address"] = toAnySlice(addresses)
}

func setOptional(target map[string]any, key string, value *string) {
	if value == nil {
		return
	}
	if *value == "" {
		delete(target, key)
		return
	}
	target[key] = *value
}

func isEmptyAddress(address *responses.Address) bool {
	return len(address.Line) == 0 && address.City == "" && address.State == "" && address.PostalCode == "" && address.Country == ""
}
