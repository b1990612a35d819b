package clinical

import (
	"context"
	"ehr-portal-service/internal/app/contracts/mocks"
	"ehr-portal-service/internal/app/models"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/exceptions"
	"ehr-portal-service/internal/pkg/fhir_dto"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase() (*clinicalUsecase, *mocks.MockFhirVendorClient, *mocks.MockAuditPublisher) {
	vendor := new(mocks.MockFhirVendorClient)
	publisher := new(mocks.MockAuditPublisher)
	return &clinicalUsecase{FhirVendorClient: vendor, AuditPublisher: publisher, Log: zap.NewNop()}, vendor, publisher
}

func patientQuery(patientID string) interface{} {
	return mock.MatchedBy(func(query url.Values) bool {
		return query.Get("patient") == patientID
	})
}

func TestListAllergies(t *testing.T) {
	uc, vendor, _ := newTestUsecase()
	vendor.On("Search", mock.Anything, "AllergyIntolerance", patientQuery("1")).Return(`{
		"resourceType":"Bundle","entry":[{"resource":{
			"resourceType":"AllergyIntolerance","id":"a1",
			"code":{"coding":[{"code":"227493005","display":"Cashew nuts"}]},
			"clinicalStatus":{"coding":[{"code":"active"}]},
			"criticality":"high"
		}}]}`, nil)

	allergies, err := uc.ListAllergies(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, allergies, 1)
	assert.Equal(t, "a1", allergies[0].ID)
	assert.Equal(t, "Cashew nuts", allergies[0].Display)
	assert.Equal(t, "active", allergies[0].ClinicalStatus)
	assert.Equal(t, "high", allergies[0].Criticality)
}

func TestListNotFoundIsEmpty(t *testing.T) {
	uc, vendor, _ := newTestUsecase()
	vendor.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, exceptions.NewVendorStatusError("GET", "Condition", "", http.StatusNotFound, nil))

	conditions, err := uc.ListConditions(context.Background(), "1")
	require.NoError(t, err)
	assert.NotNil(t, conditions)
	assert.Empty(t, conditions)

	medications, err := uc.ListMedicationStatements(context.Background(), "1")
	require.NoError(t, err)
	assert.NotNil(t, medications)
	assert.Empty(t, medications)
}

func TestListUpstreamFailure(t *testing.T) {
	uc, vendor, _ := newTestUsecase()
	vendor.On("Search", mock.Anything, "DiagnosticReport", mock.Anything).
		Return(nil, exceptions.NewVendorStatusError("GET", "DiagnosticReport", "", http.StatusBadGateway, []byte(`{"message":"down"}`)))

	_, err := uc.ListDiagnosticReports(context.Background(), "1")
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	assert.Equal(t, "Failed to fetch diagnostic reports", customErr.ClientMessage)
}

func TestCreateConditionPublishesAudit(t *testing.T) {
	uc, vendor, publisher := newTestUsecase()

	var sent fhir_dto.Condition
	vendor.On("Create", mock.Anything, "Condition", mock.AnythingOfType("fhir_dto.Condition")).
		Run(func(args mock.Arguments) { sent = args.Get(2).(fhir_dto.Condition) }).
		Return(`{"resourceType":"Condition","id":"c7","code":{"text":"Asthma"},
			"category":[{"coding":[{"code":"problem-list-item","display":"Problem List Item"}]}]}`, nil)

	var event *models.AuditEvent
	publisher.On("Publish", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { event = args.Get(1).(*models.AuditEvent) }).
		Return(nil)

	condition, err := uc.CreateCondition(context.Background(), &requests.CreateCondition{
		PatientID: "1",
		Code:      "Asthma",
		Category:  "Problem List Item",
	})
	require.NoError(t, err)
	assert.Equal(t, "c7", condition.ID)
	assert.Equal(t, "Problem List Item", condition.Category)

	assert.Equal(t, "Patient/1", sent.Subject.Reference)
	assert.Equal(t, "problem-list-item", sent.Category[0].Coding[0].Code)
	assert.Nil(t, sent.Severity)

	require.NotNil(t, event)
	assert.Equal(t, "clinical.conditions.created", event.Event)
	assert.Equal(t, "c7", event.ResourceID)
	assert.Equal(t, "1", event.PatientID)
}

func TestCreateMedicationStatementFailure(t *testing.T) {
	uc, vendor, publisher := newTestUsecase()
	vendor.On("Create", mock.Anything, "MedicationStatement", mock.Anything).
		Return(nil, exceptions.NewVendorStatusError("POST", "MedicationStatement", "", http.StatusBadRequest, []byte(`{"message":"bad"}`)))

	_, err := uc.CreateMedicationStatement(context.Background(), &requests.CreateMedicationStatement{
		PatientID:                 "1",
		MedicationCodeableConcept: "Ibuprofen",
	})
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "Failed to create medication", customErr.ClientMessage)
	assert.NotNil(t, customErr.Details)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestGetPatientDetails(t *testing.T) {
	uc, vendor, _ := newTestUsecase()
	empty := `{"resourceType":"Bundle"}`
	vendor.On("Search", mock.Anything, "AllergyIntolerance", patientQuery("1")).
		Return(`{"resourceType":"Bundle","entry":[{"resource":{"id":"a1"}}]}`, nil)
	vendor.On("Search", mock.Anything, "Condition", patientQuery("1")).Return(empty, nil)
	vendor.On("Search", mock.Anything, "DiagnosticReport", patientQuery("1")).
		Return(nil, exceptions.NewVendorStatusError("GET", "DiagnosticReport", "", http.StatusNotFound, nil))
	vendor.On("Search", mock.Anything, "MedicationStatement", patientQuery("1")).
		Return(`{"resourceType":"Bundle","entry":[{"resource":{"id":"m1"}},{"resource":{"id":"m2"}}]}`, nil)

	details, err := uc.GetPatientDetails(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, details.Allergies, 1)
	assert.Empty(t, details.Conditions)
	assert.NotNil(t, details.DiagnosticReports)
	assert.Empty(t, details.DiagnosticReports)
	assert.Len(t, details.Medications, 2)
}

func TestGetPatientDetailsFailsOnFirstError(t *testing.T) {
	uc, vendor, _ := newTestUsecase()
	vendor.On("Search", mock.Anything, "Condition", mock.Anything).
		Return(nil, exceptions.NewVendorStatusError("GET", "Condition", "", http.StatusInternalServerError, nil))
	vendor.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(`{"resourceType":"Bundle"}`, nil)

	details, err := uc.GetPatientDetails(context.Background(), "1")
	assert.Nil(t, details)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "Failed to fetch conditions", customErr.ClientMessage)
}
