package responses

type Appointment struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	Start            string `json:"start"`
	End              string `json:"end"`
	MinutesDuration  *int   `json:"minutesDuration,omitempty"`
	PatientID        string `json:"patientId"`
	PatientName      string `json:"patientName"`
	PractitionerID   string `json:"practitionerId"`
	PractitionerName string `json:"practitionerName"`
	Location         string `json:"location"`
	Description      string `json:"description"`
	ServiceType      string `json:"serviceType"`
}
