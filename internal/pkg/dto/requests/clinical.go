package requests

type CreateAllergy struct {
	PatientID      string `json:"patientId" label:"Patient ID" validate:"required"`
	Code           string `json:"code" label:"code" validate:"required"`
	Description    string `json:"description" label:"description" validate:"required"`
	ClinicalStatus string `json:"clinicalStatus" label:"clinical status" validate:"omitempty,oneof=active inactive resolved"`
	OnsetDate      string `json:"onsetDate"`
	Note           string `json:"note"`
}

type CreateCondition struct {
	PatientID      string `json:"patientId" label:"Patient ID" validate:"required"`
	Code           string `json:"code" label:"code" validate:"required"`
	Category       string `json:"category" label:"category" validate:"required"`
	ClinicalStatus string `json:"clinicalStatus" label:"clinical status" validate:"omitempty,oneof=active inactive resolved"`
	Severity       string `json:"severity"`
	OnsetDate      string `json:"onsetDate"`
	Note           string `json:"note"`
}

type CreateDiagnosticReport struct {
	PatientID     string `json:"patientId" label:"Patient ID" validate:"required"`
	Code          string `json:"code" label:"code" validate:"required"`
	Category      string `json:"category" label:"category" validate:"required"`
	Status        string `json:"status"`
	EffectiveDate string `json:"effectiveDate"`
	Performer     string `json:"performer"`
	Conclusion    string `json:"conclusion"`
}

type CreateMedicationStatement struct {
	PatientID                 string `json:"patientId" label:"Patient ID" validate:"required"`
	MedicationCodeableConcept string `json:"medicationCodeableConcept" label:"medication name" validate:"required"`
	Status                    string `json:"status"`
	EffectiveDateTime         string `json:"effectiveDateTime"`
	Dosage                    string `json:"dosage"`
	Note                      string `json:"note"`
}
