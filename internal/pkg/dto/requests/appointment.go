package requests

type CreateAppointment struct {
	PatientID       string `json:"patientId" label:"Patient ID" validate:"required"`
	PractitionerID  string `json:"practitionerId" label:"practitioner ID" validate:"required"`
	StartDateTime   string `json:"startDateTime" label:"start date" validate:"required"`
	EndDateTime     string `json:"endDateTime" label:"end date" validate:"required"`
	MinutesDuration *int   `json:"minutesDuration" label:"duration" validate:"omitempty,gt=0"`
	Description     string `json:"description"`
}

type UpdateAppointment struct {
	Status          *string `json:"status"`
	Start           *string `json:"start"`
	End             *string `json:"end"`
	MinutesDuration *int    `json:"minutesDuration" label:"duration" validate:"omitempty,gt=0"`
	Description     *string `json:"description"`
}

// AppointmentQuery narrows the appointment list. Empty fields are not sent.
type AppointmentQuery struct {
	PatientID      string
	PractitionerID string
	Count          int `validate:"omitempty,gte=1,lte=100"`
}
