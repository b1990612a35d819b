package models

import "time"

const (
	AuditPatientCreated     = "patient.created"
	AuditPatientUpdated     = "patient.updated"
	AuditPatientDeleted     = "patient.deleted"
	AuditAppointmentBooked  = "appointment.booked"
	AuditAppointmentUpdated = "appointment.updated"
	AuditClinicalCreated    = "clinical.%s.created"
)

// AuditEvent records one write against the vendor. It carries identifiers
// only.
type AuditEvent struct {
	Event        string    `json:"event"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	PatientID    string    `json:"patient_id,omitempty"`
	Actor        string    `json:"actor,omitempty"`
	RequestID    string    `json:"request_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
