package contracts

import (
	"context"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, query *requests.AppointmentQuery) ([]responses.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
}
