package fhir_dto

type Condition struct {
	ResourceType   string            `json:"resourceType"`
	ID             string            `json:"id,omitempty"`
	ClinicalStatus *CodeableConcept  `json:"clinicalStatus,omitempty"`
	Category       []CodeableConcept `json:"category,omitempty"`
	Severity       *CodeableConcept  `json:"severity,omitempty"`
	Code           CodeableConcept   `json:"code"`
	Subject        Reference         `json:"subject"`
	OnsetDateTime  string            `json:"onsetDateTime,omitempty"`
	Note           []Annotation      `json:"note,omitempty"`
}
