package fhir_dto

type AllergyIntolerance struct {
	ResourceType   string                       `json:"resourceType"`
	ID             string                       `json:"id,omitempty"`
	ClinicalStatus *CodeableConcept             `json:"clinicalStatus,omitempty"`
	Code           CodeableConcept              `json:"code"`
	Patient        Reference                    `json:"patient"`
	OnsetDateTime  string                       `json:"onsetDateTime,omitempty"`
	Note           []Annotation                 `json:"note,omitempty"`
	Reaction       []AllergyIntoleranceReaction `json:"reaction,omitempty"`
}

type AllergyIntoleranceReaction struct {
	Description string `json:"description,omitempty"`
}
