package ehrclient

import (
	"context"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
	"net/http"
	"net/url"
)

func (c *Client) Appointments(ctx context.Context, patientID string) Query[[]responses.Appointment] {
	return read(ctx, c, AppointmentsKey(patientID), func(ctx context.Context) ([]responses.Appointment, error) {
		query := url.Values{}
		if patientID != "" {
			query.Set(constvars.URLQueryParamPatient, patientID)
		}
		return call[[]responses.Appointment](ctx, c, http.MethodGet, "/appointments", query, nil)
	})
}

func (c *Client) Appointment(ctx context.Context, id string) Query[responses.Appointment] {
	return read(ctx, c, AppointmentKey(id), func(ctx context.Context) (responses.Appointment, error) {
		return call[responses.Appointment](ctx, c, http.MethodGet, "/appointments/"+url.PathEscape(id), nil, nil)
	})
}

func (c *Client) Practitioner(ctx context.Context, id string) Query[responses.Practitioner] {
	return read(ctx, c, PractitionerKey(id), func(ctx context.Context) (responses.Practitioner, error) {
		return call[responses.Practitioner](ctx, c, http.MethodGet, "/practitioners/"+url.PathEscape(id), nil, nil)
	})
}

func (c *Client) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (responses.Appointment, error) {
	appointment, err := call[responses.Appointment](ctx, c, http.MethodPost, "/appointments", nil, request)
	if err != nil {
		return appointment, err
	}
	c.invalidate(ofKind(KindAppointments))
	return appointment, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, request *requests.UpdateAppointment) (responses.Appointment, error) {
	appointment, err := call[responses.Appointment](ctx, c, http.MethodPut, "/appointments/"+url.PathEscape(id), nil, request)
	if err != nil {
		return appointment, err
	}
	c.invalidate(ofKind(KindAppointments))
	c.invalidate(exactly(AppointmentKey(id)))
	return appointment, nil
}
