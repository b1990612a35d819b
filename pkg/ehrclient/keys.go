package ehrclient

import (
	"ehr-portal-service/internal/pkg/fhirmapper"
	"fmt"
)

type Kind string

const (
	KindPatients       Kind = "patients"
	KindPatient        Kind = "patient"
	KindAppointments   Kind = "appointments"
	KindAppointment    Kind = "appointment"
	KindPractitioner   Kind = "practitioner"
	KindAccount        Kind = "account"
	KindCoverage       Kind = "coverage"
	KindPatientDetails Kind = "patient-details"
)

// CacheKey identifies one cached read. Fields that do not apply to a kind
// stay zero.
type CacheKey struct {
	Kind  Kind
	ID    string
	Page  int
	Count int
}

func (k CacheKey) String() string {
	return fmt.Sprintf("%s|%s|%d|%d", k.Kind, k.ID, k.Page, k.Count)
}

func PatientsKey(page, count int) CacheKey {
	return CacheKey{Kind: KindPatients, Page: page, Count: count}
}

func PatientKey(id string) CacheKey {
	return CacheKey{Kind: KindPatient, ID: id}
}

// AppointmentsKey covers the appointment list, optionally narrowed to one
// patient.
func AppointmentsKey(patientID string) CacheKey {
	return CacheKey{Kind: KindAppointments, ID: patientID}
}

func AppointmentKey(id string) CacheKey {
	return CacheKey{Kind: KindAppointment, ID: id}
}

func PractitionerKey(id string) CacheKey {
	return CacheKey{Kind: KindPractitioner, ID: id}
}

func ClinicalKey(kind fhirmapper.ClinicalKind, patientID string) CacheKey {
	return CacheKey{Kind: Kind(kind), ID: patientID}
}

func PatientDetailsKey(patientID string) CacheKey {
	return CacheKey{Kind: KindPatientDetails, ID: patientID}
}

func AccountKey(patientID string) CacheKey {
	return CacheKey{Kind: KindAccount, ID: patientID}
}

func CoverageKey(patientID string) CacheKey {
	return CacheKey{Kind: KindCoverage, ID: patientID}
}
