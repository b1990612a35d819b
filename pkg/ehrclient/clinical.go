package ehrclient

import (
	"context"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/fhirmapper"
	"net/http"
	"net/url"
)

func clinicalPath(kind fhirmapper.ClinicalKind) string {
	return "/patient-details/" + string(kind)
}

func patientQuery(patientID string) url.Values {
	return url.Values{constvars.URLQueryParamPatientID: {patientID}}
}

func readClinical[T any](ctx context.Context, c *Client, kind fhirmapper.ClinicalKind, patientID string) Query[[]T] {
	return read(ctx, c, ClinicalKey(kind, patientID), func(ctx context.Context) ([]T, error) {
		return call[[]T](ctx, c, http.MethodGet, clinicalPath(kind), patientQuery(patientID), nil)
	})
}

func createClinical[T any](ctx context.Context, c *Client, kind fhirmapper.ClinicalKind, patientID string, request any) (T, error) {
	record, err := call[T](ctx, c, http.MethodPost, clinicalPath(kind), nil, request)
	if err != nil {
		return record, err
	}
	c.invalidate(exactly(ClinicalKey(kind, patientID)))
	c.invalidate(exactly(PatientDetailsKey(patientID)))
	return record, nil
}

func (c *Client) Allergies(ctx context.Context, patientID string) Query[[]responses.Allergy] {
	return readClinical[responses.Allergy](ctx, c, fhirmapper.ClinicalAllergies, patientID)
}

func (c *Client) Conditions(ctx context.Context, patientID string) Query[[]responses.Condition] {
	return readClinical[responses.Condition](ctx, c, fhirmapper.ClinicalConditions, patientID)
}

func (c *Client) DiagnosticReports(ctx context.Context, patientID string) Query[[]responses.DiagnosticReport] {
	return readClinical[responses.DiagnosticReport](ctx, c, fhirmapper.ClinicalDiagnosticReports, patientID)
}

func (c *Client) Medications(ctx context.Context, patientID string) Query[[]responses.MedicationStatement] {
	return readClinical[responses.MedicationStatement](ctx, c, fhirmapper.ClinicalMedications, patientID)
}

func (c *Client) PatientDetails(ctx context.Context, patientID string) Query[responses.PatientDetails] {
	return read(ctx, c, PatientDetailsKey(patientID), func(ctx context.Context) (responses.PatientDetails, error) {
		return call[responses.PatientDetails](ctx, c, http.MethodGet, "/patient-details", patientQuery(patientID), nil)
	})
}

func (c *Client) CreateAllergy(ctx context.Context, request *requests.CreateAllergy) (responses.Allergy, error) {
	return createClinical[responses.Allergy](ctx, c, fhirmapper.ClinicalAllergies, request.PatientID, request)
}

func (c *Client) CreateCondition(ctx context.Context, request *requests.CreateCondition) (responses.Condition, error) {
	return createClinical[responses.Condition](ctx, c, fhirmapper.ClinicalConditions, request.PatientID, request)
}

func (c *Client) CreateDiagnosticReport(ctx context.Context, request *requests.CreateDiagnosticReport) (responses.DiagnosticReport, error) {
	return createClinical[responses.DiagnosticReport](ctx, c, fhirmapper.ClinicalDiagnosticReports, request.PatientID, request)
}

func (c *Client) CreateMedication(ctx context.Context, request *requests.CreateMedicationStatement) (responses.MedicationStatement, error) {
	return createClinical[responses.MedicationStatement](ctx, c, fhirmapper.ClinicalMedications, request.PatientID, request)
}
