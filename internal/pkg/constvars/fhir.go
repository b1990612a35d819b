package constvars

const (
	ResourcePatient             = "Patient"
	ResourcePractitioner        = "Practitioner"
	ResourceAppointment         = "Appointment"
	ResourceLocation            = "Location"
	ResourceAllergyIntolerance  = "AllergyIntolerance"
	ResourceCondition           = "Condition"
	ResourceDiagnosticReport    = "DiagnosticReport"
	ResourceMedicationStatement = "MedicationStatement"
	ResourceAccount             = "Account"
	ResourceCoverage            = "Coverage"
)

const (
	FhirAppointmentStatusBooked = "booked"
)

const (
	FhirParticipantStatusAccepted = "accepted"
)

const (
	FhirContactPointSystemPhone = "phone"
	FhirContactPointSystemEmail = "email"
	FhirContactPointUseMobile   = "mobile"
)

const (
	FhirClinicalStatusActive   = "active"
	FhirClinicalStatusInactive = "inactive"
)

const (
	FhirDiagnosticReportStatusFinal     = "final"
	FhirMedicationStatementStatusActive = "active"
	FhirAccountStatusActive             = "active"
	FhirCoverageStatusUnknown           = "unknown"
)

// Code systems used when building outbound resources.
const (
	FhirSystemAppointmentReason = "http://terminology.hl7.org/CodeSystem/v2-0276"
	FhirSystemAllergyClinical   = "https://www.hl7.org/fhir/valueset-allergyintolerance-clinical.html"
	FhirSystemConditionClinical = "http://terminology.hl7.org/CodeSystem/condition-clinical"
	FhirSystemConditionCategory = "http://terminology.hl7.org/CodeSystem/condition-category"
	FhirSystemSnomed            = "http://snomed.info/sct"
	FhirSystemDiagnosticService = "http://terminology.hl7.org/CodeSystem/v2-0074"
)

const (
	FhirAppointmentTypeNewPatientCode    = "1509"
	FhirAppointmentTypeNewPatientDisplay = "New Patient"
)

const (
	FhirCoverageClassPlan  = "plan"
	FhirCoverageClassGroup = "group"
)

const (
	VendorConflictBookingUnavailable = "BOOKING_UNAVAILABLE"
)

const (
	VendorQueryPatient      = "patient"
	VendorQueryPractitioner = "practitioner"
	VendorQueryCount        = "_count"
	VendorQueryPage         = "page"
)

// Placeholder values when a vendor field is absent.
const (
	UnknownStatus           = "unknown"
	UnknownService          = "Unknown Service"
	UnknownLocation         = "Unknown Location"
	UnknownPayor            = "Unknown"
	UnknownCoverageType     = "Unknown"
	UnknownPractitionerName = "Unknown Practitioner"
)
