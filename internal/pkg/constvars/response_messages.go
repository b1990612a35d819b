package constvars

const (
	ResponseUnknown = "unknown"

	GetPatientsSuccessMessage   = "get patients successfully"
	GetPatientSuccessMessage    = "get patient successfully"
	CreatePatientSuccessMessage = "patient created successfully"
	UpdatePatientSuccessMessage = "patient updated successfully"
	DeletePatientSuccessMessage = "patient deleted successfully"

	GetAppointmentsSuccessMessage   = "get appointments successfully"
	GetAppointmentSuccessMessage    = "get appointment successfully"
	CreateAppointmentSuccessMessage = "appointment booked successfully"
	UpdateAppointmentSuccessMessage = "appointment updated successfully"

	GetPractitionerSuccessMessage = "get practitioner successfully"

	GetClinicalRecordsSuccessMessage   = "get %s successfully"
	CreateClinicalRecordSuccessMessage = "%s created successfully"
	GetPatientDetailsSuccessMessage    = "get patient details successfully"

	GetAccountSuccessMessage  = "get account successfully"
	GetCoverageSuccessMessage = "get coverage successfully"

	LoginSuccessMessage      = "successfully login"
	SignupSuccessMessage     = "successfully signed up"
	LogoutSuccessMessage     = "successfully logout"
	GetSessionSuccessMessage = "get session successfully"
	HealthySuccessMessage    = "ok"
)
