package responses

type Allergy struct {
	ID                 string `json:"id"`
	Code               string `json:"code"`
	Display            string `json:"display"`
	ClinicalStatus     string `json:"clinicalStatus"`
	VerificationStatus string `json:"verificationStatus"`
	Category           string `json:"category"`
	Criticality        string `json:"criticality"`
	OnsetDateTime      string `json:"onsetDateTime,omitempty"`
	Note               string `json:"note"`
}

type Condition struct {
	ID                 string `json:"id"`
	Code               string `json:"code"`
	Display            string `json:"display"`
	ClinicalStatus     string `json:"clinicalStatus"`
	VerificationStatus string `json:"verificationStatus"`
	Category           string `json:"category"`
	Severity           string `json:"severity"`
	OnsetDateTime      string `json:"onsetDateTime,omitempty"`
	Note               string `json:"note"`
}

type CodedValue struct {
	Coding []Coding `json:"coding"`
	Text   string   `json:"text,omitempty"`
}

type Attachment struct {
	ContentType string `json:"contentType"`
	Data        string `json:"data"`
}

type DiagnosticReport struct {
	ID                string       `json:"id"`
	Status            string       `json:"status"`
	Category          string       `json:"category"`
	Code              CodedValue   `json:"code"`
	Subject           Reference    `json:"subject"`
	EffectiveDateTime string       `json:"effectiveDateTime,omitempty"`
	Issued            string       `json:"issued,omitempty"`
	Performer         []Reference  `json:"performer"`
	Conclusion        string       `json:"conclusion,omitempty"`
	PresentedForm     []Attachment `json:"presentedForm"`
}

type Dosage struct {
	Text string `json:"text"`
}

type MedicationStatement struct {
	ID                        string     `json:"id"`
	Status                    string     `json:"status"`
	MedicationCodeableConcept CodedValue `json:"medicationCodeableConcept"`
	Subject                   Reference  `json:"subject"`
	EffectiveDateTime         string     `json:"effectiveDateTime,omitempty"`
	Dosage                    []Dosage   `json:"dosage"`
	Note                      string     `json:"note"`
}

// PatientDetails groups every clinical list of one patient.
type PatientDetails struct {
	Allergies         []Allergy             `json:"allergies"`
	Conditions        []Condition           `json:"conditions"`
	DiagnosticReports []DiagnosticReport    `json:"diagnosticReports"`
	Medications       []MedicationStatement `json:"medications"`
}
