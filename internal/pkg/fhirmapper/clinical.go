package fhirmapper

import (
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/fhir_dto"
	"ehr-portal-service/internal/pkg/fhirjson"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// ClinicalKind names one family of patient sub-records.
type ClinicalKind string

const (
	ClinicalAllergies         ClinicalKind = "allergies"
	ClinicalConditions        ClinicalKind = "conditions"
	ClinicalDiagnosticReports ClinicalKind = "diagnostic-reports"
	ClinicalMedications       ClinicalKind = "medications"
)

var ClinicalKinds = []ClinicalKind{
	ClinicalAllergies,
	ClinicalConditions,
	ClinicalDiagnosticReports,
	ClinicalMedications,
}

func (k ClinicalKind) ResourceType() string {
	switch k {
	case ClinicalAllergies:
		return constvars.ResourceAllergyIntolerance
	case ClinicalConditions:
		return constvars.ResourceCondition
	case ClinicalDiagnosticReports:
		return constvars.ResourceDiagnosticReport
	case ClinicalMedications:
		return constvars.ResourceMedicationStatement
	default:
		return ""
	}
}

// Label is the human readable plural used in messages.
func (k ClinicalKind) Label() string {
	switch k {
	case ClinicalDiagnosticReports:
		return "diagnostic reports"
	default:
		return string(k)
	}
}

// Singular is used in create failure messages.
func (k ClinicalKind) Singular() string {
	switch k {
	case ClinicalAllergies:
		return "allergy"
	case ClinicalConditions:
		return "condition"
	case ClinicalDiagnosticReports:
		return "diagnostic report"
	case ClinicalMedications:
		return "medication"
	default:
		return string(k)
	}
}

// CategoryCode lowercases a category label and joins words with hyphens.
func CategoryCode(category string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(category)), "-")
}

func clinicalStatusConcept(system, status string) *fhir_dto.CodeableConcept {
	if status == "" {
		status = constvars.FhirClinicalStatusActive
	}
	display := "Resolved"
	switch status {
	case constvars.FhirClinicalStatusActive:
		display = "Active"
	case constvars.FhirClinicalStatusInactive:
		display = "Inactive"
	}
	return &fhir_dto.CodeableConcept{
		Coding: []fhir_dto.Coding{{System: system, Code: status, Display: display}},
		Text:   display,
	}
}

func patientReference(patientID string) fhir_dto.Reference {
	return fhir_dto.Reference{Reference: BuildReference(constvars.ResourcePatient, patientID)}
}

func notes(text string) []fhir_dto.Annotation {
	if text == "" {
		return nil
	}
	return []fhir_dto.Annotation{{Text: text}}
}

func AllergyToFHIR(request *requests.CreateAllergy) fhir_dto.AllergyIntolerance {
	return fhir_dto.AllergyIntolerance{
		ResourceType:   constvars.ResourceAllergyIntolerance,
		ClinicalStatus: clinicalStatusConcept(constvars.FhirSystemAllergyClinical, request.ClinicalStatus),
		Code:           fhir_dto.CodeableConcept{Text: request.Code},
		Patient:        patientReference(request.PatientID),
		OnsetDateTime:  request.OnsetDate,
		Note:           notes(request.Note),
		Reaction:       []fhir_dto.AllergyIntoleranceReaction{{Description: request.Description}},
	}
}

func ConditionToFHIR(request *requests.CreateCondition) fhir_dto.Condition {
	condition := fhir_dto.Condition{
		ResourceType:   constvars.ResourceCondition,
		ClinicalStatus: clinicalStatusConcept(constvars.FhirSystemConditionClinical, request.ClinicalStatus),
		Code:           fhir_dto.CodeableConcept{Text: request.Code},
		Category: []fhir_dto.CodeableConcept{
			{
				Coding: []fhir_dto.Coding{
					{
						System:  constvars.FhirSystemConditionCategory,
						Code:    CategoryCode(request.Category),
						Display: request.Category,
					},
				},
			},
		},
		Subject:       patientReference(request.PatientID),
		OnsetDateTime: request.OnsetDate,
		Note:          notes(request.Note),
	}
	if request.Severity != "" {
		condition.Severity = &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{
					System:  constvars.FhirSystemSnomed,
					Code:    strings.ToLower(request.Severity),
					Display: request.Severity,
				},
			},
		}
	}
	return condition
}

func DiagnosticReportToFHIR(request *requests.CreateDiagnosticReport) fhir_dto.DiagnosticReport {
	report := fhir_dto.DiagnosticReport{
		ResourceType: constvars.ResourceDiagnosticReport,
		Status:       request.Status,
		Category: []fhir_dto.CodeableConcept{
			{
				Coding: []fhir_dto.Coding{
					{
						System:  constvars.FhirSystemDiagnosticService,
						Code:    CategoryCode(request.Category),
						Display: request.Category,
					},
				},
			},
		},
		Code:              fhir_dto.CodeableConcept{Text: request.Code},
		Subject:           patientReference(request.PatientID),
		EffectiveDateTime: request.EffectiveDate,
		Conclusion:        request.Conclusion,
	}
	if report.Status == "" {
		report.Status = constvars.FhirDiagnosticReportStatusFinal
	}
	if request.Performer != "" {
		report.Performer = []fhir_dto.Reference{{Display: request.Performer}}
	}
	return report
}

func MedicationStatementToFHIR(request *requests.CreateMedicationStatement) fhir_dto.MedicationStatement {
	statement := fhir_dto.MedicationStatement{
		ResourceType:              constvars.ResourceMedicationStatement,
		Status:                    request.Status,
		MedicationCodeableConcept: fhir_dto.CodeableConcept{Text: request.MedicationCodeableConcept},
		Subject:                   patientReference(request.PatientID),
		EffectiveDateTime:         request.EffectiveDateTime,
		Note:                      notes(request.Note),
	}
	if statement.Status == "" {
		statement.Status = constvars.FhirMedicationStatementStatusActive
	}
	if request.Dosage != "" {
		statement.Dosage = []fhir_dto.Dosage{{Text: request.Dosage}}
	}
	return statement
}

func AllergyFromFHIR(resource gjson.Result) responses.Allergy {
	return responses.Allergy{
		ID:                 fhirjson.String(resource, "id"),
		Code:               fhirjson.FirstString(resource, "code.coding.0.code", "code.text"),
		Display:            fhirjson.FirstString(resource, "code.coding.0.display", "code.text"),
		ClinicalStatus:     fhirjson.String(resource, "clinicalStatus.coding.0.code"),
		VerificationStatus: fhirjson.String(resource, "verificationStatus.coding.0.code"),
		Category:           fhirjson.String(resource, "category.0"),
		Criticality:        fhirjson.String(resource, "criticality"),
		OnsetDateTime:      fhirjson.String(resource, "onsetDateTime"),
		Note:               fhirjson.String(resource, "note.0.text"),
	}
}

func ConditionFromFHIR(resource gjson.Result) responses.Condition {
	return responses.Condition{
		ID:                 fhirjson.String(resource, "id"),
		Code:               fhirjson.FirstString(resource, "code.coding.0.code", "code.text"),
		Display:            fhirjson.FirstString(resource, "code.coding.0.display", "code.text"),
		ClinicalStatus:     fhirjson.String(resource, "clinicalStatus.coding.0.code"),
		VerificationStatus: fhirjson.String(resource, "verificationStatus.coding.0.code"),
		Category:           fhirjson.String(resource, "category.0.coding.0.display"),
		Severity:           fhirjson.String(resource, "severity.coding.0.display"),
		OnsetDateTime:      fhirjson.String(resource, "onsetDateTime"),
		Note:               fhirjson.String(resource, "note.0.text"),
	}
}

func DiagnosticReportFromFHIR(resource gjson.Result) responses.DiagnosticReport {
	report := responses.DiagnosticReport{
		ID:                fhirjson.String(resource, "id"),
		Status:            fhirjson.String(resource, "status"),
		Category:          fhirjson.String(resource, "category.0.coding.0.display"),
		Code:              codedValue(resource.Get("code")),
		Subject:           referenceValue(resource.Get("subject")),
		EffectiveDateTime: fhirjson.String(resource, "effectiveDateTime"),
		Issued:            fhirjson.String(resource, "issued"),
		Conclusion:        fhirjson.String(resource, "conclusion"),
		Performer:         []responses.Reference{},
		PresentedForm:     []responses.Attachment{},
	}
	for _, performer := range fhirjson.Array(resource, "performer") {
		report.Performer = append(report.Performer, referenceValue(performer))
	}
	for _, form := range fhirjson.Array(resource, "presentedForm") {
		report.PresentedForm = append(report.PresentedForm, responses.Attachment{
			ContentType: fhirjson.String(form, "contentType"),
			Data:        fhirjson.String(form, "data"),
		})
	}
	return report
}

func MedicationStatementFromFHIR(resource gjson.Result) responses.MedicationStatement {
	statement := responses.MedicationStatement{
		ID:                        fhirjson.String(resource, "id"),
		Status:                    fhirjson.String(resource, "status"),
		MedicationCodeableConcept: codedValue(resource.Get("medicationCodeableConcept")),
		Subject:                   referenceValue(resource.Get("subject")),
		EffectiveDateTime:         fhirjson.String(resource, "effectiveDateTime"),
		Dosage:                    []responses.Dosage{},
		Note:                      fhirjson.String(resource, "note.0.text"),
	}
	for _, dosage := range fhirjson.Array(resource, "dosage") {
		statement.Dosage = append(statement.Dosage, responses.Dosage{Text: fhirjson.String(dosage, "text")})
	}
	return statement
}

func codedValue(concept gjson.Result) responses.CodedValue {
	value := responses.CodedValue{
		Coding: []responses.Coding{},
		Text:   fhirjson.String(concept, "text"),
	}
	for _, coding := range fhirjson.Array(concept, "coding") {
		value.Coding = append(value.Coding, responses.Coding{
			System:  fhirjson.String(coding, "system"),
			Code:    fhirjson.String(coding, "code"),
			Display: fhirjson.String(coding, "display"),
		})
	}
	return value
}

func referenceValue(reference gjson.Result) responses.Reference {
	return responses.Reference{
		Reference: fhirjson.String(reference, "reference"),
		Display:   fhirjson.String(reference, "display"),
	}
}
