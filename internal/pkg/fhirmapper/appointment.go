package fhirmapper

import (
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/fhir_dto"
	"ehr-portal-service/internal/pkg/fhirjson"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// BookingParticipants holds what the booking flow learned about the
// referenced entities before building the vendor resource.
type BookingParticipants struct {
	PatientName      string
	PractitionerName string
	LocationID       string
	LocationDisplay  string
}

func AppointmentFromFHIR(resource gjson.Result) responses.Appointment {
	appointment := responses.Appointment{
		ID:              fhirjson.String(resource, "id"),
		Status:          fhirjson.String(resource, "status"),
		Start:           fhirjson.String(resource, "start"),
		End:             fhirjson.String(resource, "end"),
		MinutesDuration: fhirjson.OptInt(resource, "minutesDuration"),
		Description:     fhirjson.String(resource, "description"),
		ServiceType: fhirjson.FirstString(resource,
			"appointmentType.coding.0.display",
			"appointmentType.text",
		),
		Location: constvars.UnknownLocation,
	}
	if appointment.Status == "" {
		appointment.Status = constvars.UnknownStatus
	}
	if appointment.ServiceType == "" {
		appointment.ServiceType = constvars.UnknownService
	}

	for _, participant := range fhirjson.Array(resource, "participant") {
		reference := fhirjson.String(participant, "actor.reference")
		display := fhirjson.String(participant, "actor.display")
		kind, id := ParseReference(reference)
		if display == "" {
			display = PlaceholderDisplay(kind, id)
		}

		switch kind {
		case constvars.ResourcePatient:
			if appointment.PatientID == "" {
				appointment.PatientID = id
				appointment.PatientName = display
			}
		case constvars.ResourcePractitioner:
			if appointment.PractitionerID == "" {
				appointment.PractitionerID = id
				appointment.PractitionerName = display
			}
		case constvars.ResourceLocation:
			if display != "" {
				appointment.Location = display
			}
		}
	}
	return appointment
}

// AppointmentToFHIR builds a booked appointment with patient, location and
// practitioner participants.
func AppointmentToFHIR(request *requests.CreateAppointment, participants BookingParticipants) fhir_dto.Appointment {
	return fhir_dto.Appointment{
		ResourceType: constvars.ResourceAppointment,
		Status:       constvars.FhirAppointmentStatusBooked,
		AppointmentType: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{
					System:  constvars.FhirSystemAppointmentReason,
					Code:    constvars.FhirAppointmentTypeNewPatientCode,
					Display: constvars.FhirAppointmentTypeNewPatientDisplay,
				},
			},
			Text: constvars.FhirAppointmentTypeNewPatientDisplay,
		},
		Description:     request.Description,
		Start:           request.StartDateTime,
		End:             request.EndDateTime,
		MinutesDuration: BookingDuration(request),
		Participant: []fhir_dto.AppointmentParticipant{
			{
				Actor: fhir_dto.Reference{
					Reference: BuildReference(constvars.ResourcePatient, request.PatientID),
					Display:   participants.PatientName,
				},
				Status: constvars.FhirParticipantStatusAccepted,
			},
			{
				Actor: fhir_dto.Reference{
					Reference: BuildReference(constvars.ResourceLocation, participants.LocationID),
					Display:   participants.LocationDisplay,
				},
				Status: constvars.FhirParticipantStatusAccepted,
			},
			{
				Actor: fhir_dto.Reference{
					Reference: BuildReference(constvars.ResourcePractitioner, request.PractitionerID),
					Display:   participants.PractitionerName,
				},
				Status: constvars.FhirParticipantStatusAccepted,
			},
		},
	}
}

// BookingDuration is the requested duration, else the span between start
// and end, else the default slot length.
func BookingDuration(request *requests.CreateAppointment) int {
	if request.MinutesDuration != nil && *request.MinutesDuration > 0 {
		return *request.MinutesDuration
	}
	if minutes, ok := DurationMinutes(request.StartDateTime, request.EndDateTime); ok {
		return minutes
	}
	return constvars.DefaultAppointmentDurationInMinutes
}

// ValidateBookingTimes rejects a booking whose end does not follow its start
// or whose explicit duration disagrees with the span. Unparseable values are
// left to the default slot length.
func ValidateBookingTimes(request *requests.CreateAppointment) error {
	startTime, _, err := ParseDateTime(request.StartDateTime)
	if err != nil {
		return nil
	}
	endTime, _, err := ParseDateTime(request.EndDateTime)
	if err != nil {
		return nil
	}
	span := endTime.Sub(startTime)
	if span <= 0 {
		return exceptions.ErrInconsistentAppointmentTimes(nil)
	}
	if request.MinutesDuration != nil && span != time.Duration(*request.MinutesDuration)*time.Minute {
		return exceptions.ErrInconsistentAppointmentTimes(nil)
	}
	return nil
}

// MergeAppointment overlays an update onto the stored vendor resource and
// keeps start, end and minutesDuration consistent with each other.
func MergeAppointment(current map[string]any, id string, request *requests.UpdateAppointment) (map[string]any, error) {
	merged := current
	if merged == nil {
		merged = map[string]any{}
	}
	merged["resourceType"] = constvars.ResourceAppointment
	merged["id"] = id

	if request.Status != nil && strings.TrimSpace(*request.Status) != "" {
		merged["status"] = *request.Status
	}
	setOptional(merged, "description", request.Description)

	if request.Start == nil && request.End == nil && request.MinutesDuration == nil {
		return merged, nil
	}

	start := stringValue(merged["start"])
	if request.Start != nil {
		start = *request.Start
	}
	end := stringValue(merged["end"])
	if request.End != nil {
		end = *request.End
	}

	startTime, startLayout, err := ParseDateTime(start)
	if err != nil {
		return nil, exceptions.ErrInvalidDateTime(err, "start")
	}

	if request.MinutesDuration != nil {
		duration := *request.MinutesDuration
		if request.End != nil {
			endTime, _, err := ParseDateTime(end)
			if err != nil {
				return nil, exceptions.ErrInvalidDateTime(err, "end")
			}
			if endTime.Sub(startTime) != time.Duration(duration)*time.Minute {
				return nil, exceptions.ErrInconsistentAppointmentTimes(nil)
			}
		} else {
			end = startTime.Add(time.Duration(duration) * time.Minute).Format(startLayout)
		}
		merged["start"] = start
		merged["end"] = end
		merged["minutesDuration"] = duration
		return merged, nil
	}

	if end == "" {
		// stored as start plus duration only
		if stored := intValue(merged["minutesDuration"]); stored > 0 {
			merged["start"] = start
			merged["end"] = startTime.Add(time.Duration(stored) * time.Minute).Format(startLayout)
			merged["minutesDuration"] = stored
			return merged, nil
		}
	}

	endTime, _, err := ParseDateTime(end)
	if err != nil {
		return nil, exceptions.ErrInvalidDateTime(err, "end")
	}
	minutes := int(endTime.Sub(startTime) / time.Minute)
	if minutes <= 0 {
		return nil, exceptions.ErrInconsistentAppointmentTimes(nil)
	}
	merged["start"] = start
	merged["end"] = end
	merged["minutesDuration"] = minutes
	return merged, nil
}
