package mocks

import (
	"context"
	"ehr-portal-service/internal/app/models"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) ListPatients(ctx context.Context, query *requests.PageQuery) (*responses.PatientPage, error) {
	args := m.Called(ctx, query)
	page, _ := args.Get(0).(*responses.PatientPage)
	return page, args.Error(1)
}

func (m *MockPatientUsecase) GetPatient(ctx context.Context, patientID string) (*responses.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, request)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, patientID, request)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) ListAppointments(ctx context.Context, query *requests.AppointmentQuery) ([]responses.Appointment, error) {
	args := m.Called(ctx, query)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentUsecase) GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

type MockPractitionerUsecase struct {
	mock.Mock
}

func (m *MockPractitionerUsecase) GetPractitioner(ctx context.Context, practitionerID string) (*responses.Practitioner, error) {
	args := m.Called(ctx, practitionerID)
	practitioner, _ := args.Get(0).(*responses.Practitioner)
	return practitioner, args.Error(1)
}

type MockClinicalUsecase struct {
	mock.Mock
}

func (m *MockClinicalUsecase) ListAllergies(ctx context.Context, patientID string) ([]responses.Allergy, error) {
	args := m.Called(ctx, patientID)
	records, _ := args.Get(0).([]responses.Allergy)
	return records, args.Error(1)
}

func (m *MockClinicalUsecase) ListConditions(ctx context.Context, patientID string) ([]responses.Condition, error) {
	args := m.Called(ctx, patientID)
	records, _ := args.Get(0).([]responses.Condition)
	return records, args.Error(1)
}

func (m *MockClinicalUsecase) ListDiagnosticReports(ctx context.Context, patientID string) ([]responses.DiagnosticReport, error) {
	args := m.Called(ctx, patientID)
	records, _ := args.Get(0).([]responses.DiagnosticReport)
	return records, args.Error(1)
}

func (m *MockClinicalUsecase) ListMedicationStatements(ctx context.Context, patientID string) ([]responses.MedicationStatement, error) {
	args := m.Called(ctx, patientID)
	records, _ := args.Get(0).([]responses.MedicationStatement)
	return records, args.Error(1)
}

func (m *MockClinicalUsecase) CreateAllergy(ctx context.Context, request *requests.CreateAllergy) (*responses.Allergy, error) {
	args := m.Called(ctx, request)
	record, _ := args.Get(0).(*responses.Allergy)
	return record, args.Error(1)
}

func (m *MockClinicalUsecase) CreateCondition(ctx context.Context, request *requests.CreateCondition) (*responses.Condition, error) {
	args := m.Called(ctx, request)
	record, _ := args.Get(0).(*responses.Condition)
	return record, args.Error(1)
}

func (m *MockClinicalUsecase) CreateDiagnosticReport(ctx context.Context, request *requests.CreateDiagnosticReport) (*responses.DiagnosticReport, error) {
	args := m.Called(ctx, request)
	record, _ := args.Get(0).(*responses.DiagnosticReport)
	return record, args.Error(1)
}

func (m *MockClinicalUsecase) CreateMedicationStatement(ctx context.Context, request *requests.CreateMedicationStatement) (*responses.MedicationStatement, error) {
	args := m.Called(ctx, request)
	record, _ := args.Get(0).(*responses.MedicationStatement)
	return record, args.Error(1)
}

func (m *MockClinicalUsecase) GetPatientDetails(ctx context.Context, patientID string) (*responses.PatientDetails, error) {
	args := m.Called(ctx, patientID)
	details, _ := args.Get(0).(*responses.PatientDetails)
	return details, args.Error(1)
}

type MockBillingUsecase struct {
	mock.Mock
}

func (m *MockBillingUsecase) GetAccount(ctx context.Context, patientID string) (*responses.AccountInfo, error) {
	args := m.Called(ctx, patientID)
	account, _ := args.Get(0).(*responses.AccountInfo)
	return account, args.Error(1)
}

func (m *MockBillingUsecase) ListCoverage(ctx context.Context, patientID string) ([]responses.CoverageInfo, error) {
	args := m.Called(ctx, patientID)
	coverage, _ := args.Get(0).([]responses.CoverageInfo)
	return coverage, args.Error(1)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Session, error) {
	args := m.Called(ctx, request)
	session, _ := args.Get(0).(*responses.Session)
	return session, args.Error(1)
}

func (m *MockAuthUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Session, error) {
	args := m.Called(ctx, request)
	session, _ := args.Get(0).(*responses.Session)
	return session, args.Error(1)
}

func (m *MockAuthUsecase) GetSession(ctx context.Context, session *models.Session) (*responses.Session, error) {
	args := m.Called(ctx, session)
	response, _ := args.Get(0).(*responses.Session)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
