package constvars

const (
	URLParamID = "id"
)

const (
	URLQueryParamPage         = "page"
	URLQueryParamCount        = "_count"
	URLQueryParamPatient      = "patient"
	URLQueryParamPractitioner = "practitioner"
	URLQueryParamPatientID    = "patientId"
)
