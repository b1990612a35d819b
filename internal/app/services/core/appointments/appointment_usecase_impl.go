package appointments

import (
	"context"
	"ehr-portal-service/internal/app/contracts"
	"ehr-portal-service/internal/app/models"
	"ehr-portal-service/internal/app/services/shared/audit"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/fhirjson"
	"ehr-portal-service/internal/pkg/fhirmapper"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Location is the vendor location every new booking is placed at.
type Location struct {
	ID      string
	Display string
}

type appointmentUsecase struct {
	FhirVendorClient contracts.FhirVendorClient
	AuditPublisher   contracts.AuditPublisher
	DefaultLocation  Location
	Log              *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	fhirVendorClient contracts.FhirVendorClient,
	auditPublisher contracts.AuditPublisher,
	defaultLocation Location,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			FhirVendorClient: fhirVendorClient,
			AuditPublisher:   auditPublisher,
			DefaultLocation:  defaultLocation,
			Log:              logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, query *requests.AppointmentQuery) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, query.PatientID),
		zap.String(constvars.LoggingPractitionerIDKey, query.PractitionerID),
	)

	params := url.Values{}
	if query.PatientID != "" {
		params.Set(constvars.VendorQueryPatient, query.PatientID)
	}
	if query.PractitionerID != "" {
		params.Set(constvars.VendorQueryPractitioner, query.PractitionerID)
	}
	if query.Count > 0 {
		params.Set(constvars.VendorQueryCount, strconv.Itoa(query.Count))
	}

	bundle, err := uc.FhirVendorClient.Search(ctx, constvars.ResourceAppointment, params)
	if err != nil {
		if exceptions.IsVendorNotFound(err) {
			return []responses.Appointment{}, nil
		}
		uc.Log.Error("appointmentUsecase.ListAppointments error searching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromVendorError(err, "Appointments", fmt.Sprintf(constvars.ErrClientFailedToFetch, "appointments"))
	}

	appointments := fhirmapper.MapBundle(bundle, fhirmapper.AppointmentFromFHIR)
	uc.Log.Info("appointmentUsecase.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingEntryCountKey, len(appointments)),
	)
	return appointments, nil
}

func (uc *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	raw, err := uc.FhirVendorClient.Read(ctx, constvars.ResourceAppointment, appointmentID)
	if err != nil {
		return nil, exceptions.FromVendorError(err, constvars.ResourceAppointment, fmt.Sprintf(constvars.ErrClientFailedToFetch, "appointment"))
	}

	appointment := fhirmapper.AppointmentFromFHIR(fhirjson.Parse(raw))
	return &appointment, nil
}

// CreateAppointment confirms the patient and practitioner exist, then books
// them at the default location.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingPractitionerIDKey, request.PractitionerID),
	)

	if err := fhirmapper.ValidateBookingTimes(request); err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment rejected booking times",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	participants, err := uc.lookupParticipants(ctx, request.PatientID, request.PractitionerID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment participant lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	raw, err := uc.FhirVendorClient.Create(ctx, constvars.ResourceAppointment, fhirmapper.AppointmentToFHIR(request, participants))
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error booking appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVendorFailureKey, exceptions.ClassifyVendorError(err).String()),
			zap.Error(err),
		)
		return nil, exceptions.FromVendorError(err, constvars.ResourceAppointment, fmt.Sprintf(constvars.ErrClientFailedToCreate, "appointment"))
	}

	appointment := fhirmapper.AppointmentFromFHIR(fhirjson.Parse(raw))
	audit.Record(ctx, uc.AuditPublisher, uc.Log, models.AuditEvent{
		Event:        models.AuditAppointmentBooked,
		ResourceType: constvars.ResourceAppointment,
		ResourceID:   appointment.ID,
		PatientID:    request.PatientID,
	})

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return &appointment, nil
}

// lookupParticipants reads both entities concurrently. Both reads always
// finish so a missing patient is reported ahead of a missing practitioner.
func (uc *appointmentUsecase) lookupParticipants(ctx context.Context, patientID, practitionerID string) (fhirmapper.BookingParticipants, error) {
	var (
		group                       errgroup.Group
		patientRaw, practitionerRaw []byte
		patientErr, practitionerErr error
	)
	group.Go(func() error {
		patientRaw, patientErr = uc.FhirVendorClient.Read(ctx, constvars.ResourcePatient, patientID)
		return patientErr
	})
	group.Go(func() error {
		practitionerRaw, practitionerErr = uc.FhirVendorClient.Read(ctx, constvars.ResourcePractitioner, practitionerID)
		return practitionerErr
	})

	if err := group.Wait(); err != nil {
		var customErr *exceptions.CustomError
		switch {
		case exceptions.IsVendorNotFound(patientErr):
			return fhirmapper.BookingParticipants{}, exceptions.ErrResourceNotFound(patientErr, constvars.ResourcePatient)
		case exceptions.IsVendorNotFound(practitionerErr):
			return fhirmapper.BookingParticipants{}, exceptions.ErrResourceNotFound(practitionerErr, constvars.ResourcePractitioner)
		case errors.As(err, &customErr):
			return fhirmapper.BookingParticipants{}, customErr
		default:
			return fhirmapper.BookingParticipants{}, exceptions.ErrValidateParticipants(err)
		}
	}

	return fhirmapper.BookingParticipants{
		PatientName:      fhirmapper.PatientDisplayName(fhirjson.Parse(patientRaw)),
		PractitionerName: fhirmapper.PractitionerDisplayName(fhirjson.Parse(practitionerRaw)),
		LocationID:       uc.DefaultLocation.ID,
		LocationDisplay:  uc.DefaultLocation.Display,
	}, nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	failureMessage := fmt.Sprintf(constvars.ErrClientFailedToUpdate, "appointment")
	raw, err := uc.FhirVendorClient.Read(ctx, constvars.ResourceAppointment, appointmentID)
	if err != nil {
		return nil, exceptions.FromVendorError(err, constvars.ResourceAppointment, failureMessage)
	}

	var current map[string]any
	if err := json.Unmarshal(raw, &current); err != nil {
		return nil, exceptions.ErrDecodeVendorResponse(err, constvars.ResourceAppointment)
	}

	merged, err := fhirmapper.MergeAppointment(current, appointmentID, request)
	if err != nil {
		return nil, err
	}

	updated, err := uc.FhirVendorClient.Update(ctx, constvars.ResourceAppointment, appointmentID, merged)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromVendorError(err, constvars.ResourceAppointment, failureMessage)
	}

	appointment := fhirmapper.AppointmentFromFHIR(fhirjson.Parse(updated))
	if appointment.ID == "" {
		appointment.ID = appointmentID
	}
	audit.Record(ctx, uc.AuditPublisher, uc.Log, models.AuditEvent{
		Event:        models.AuditAppointmentUpdated,
		ResourceType: constvars.ResourceAppointment,
		ResourceID:   appointmentID,
		PatientID:    appointment.PatientID,
	})
	return &appointment, nil
}
