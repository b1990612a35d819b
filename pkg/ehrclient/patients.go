package ehrclient

import (
	"context"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) Patients(ctx context.Context, page, count int) Query[responses.PatientPage] {
	return read(ctx, c, PatientsKey(page, count), func(ctx context.Context) (responses.PatientPage, error) {
		query := url.Values{}
		if page > 0 {
			query.Set(constvars.URLQueryParamPage, strconv.Itoa(page))
		}
		if count > 0 {
			query.Set(constvars.URLQueryParamCount, strconv.Itoa(count))
		}

		result, err := c.do(ctx, http.MethodGet, "/patients", query, nil)
		if err != nil {
			return responses.PatientPage{}, err
		}
		patients, err := decodeData[[]responses.Patient](result)
		if err != nil {
			return responses.PatientPage{}, err
		}

		out := responses.PatientPage{Data: patients}
		if result.Pagination != nil {
			out.Pagination = *result.Pagination
		}
		return out, nil
	})
}

func (c *Client) Patient(ctx context.Context, id string) Query[responses.Patient] {
	return read(ctx, c, PatientKey(id), func(ctx context.Context) (responses.Patient, error) {
		return call[responses.Patient](ctx, c, http.MethodGet, "/patients/"+url.PathEscape(id), nil, nil)
	})
}

func (c *Client) CreatePatient(ctx context.Context, request *requests.CreatePatient) (responses.Patient, error) {
	patient, err := call[responses.Patient](ctx, c, http.MethodPost, "/patients", nil, request)
	if err != nil {
		return patient, err
	}
	c.invalidate(ofKind(KindPatients))
	return patient, nil
}

func (c *Client) UpdatePatient(ctx context.Context, id string, request *requests.UpdatePatient) (responses.Patient, error) {
	patient, err := call[responses.Patient](ctx, c, http.MethodPut, "/patients/"+url.PathEscape(id), nil, request)
	if err != nil {
		return patient, err
	}
	c.invalidate(ofKind(KindPatients))
	c.invalidate(exactly(PatientKey(id)))
	return patient, nil
}

// RemovePatient deletes the patient, refreshes the lists and forgets the
// single-patient entry.
func (c *Client) RemovePatient(ctx context.Context, id string) error {
	if _, err := c.do(ctx, http.MethodDelete, "/patients/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}
	c.remove(PatientKey(id))
	c.invalidate(ofKind(KindPatients))
	return nil
}
