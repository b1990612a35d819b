package contracts

import (
	"context"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
)

type ClinicalUsecase interface {
	ListAllergies(ctx context.Context, patientID string) ([]responses.Allergy, error)
	ListConditions(ctx context.Context, patientID string) ([]responses.Condition, error)
	ListDiagnosticReports(ctx context.Context, patientID string) ([]responses.DiagnosticReport, error)
	ListMedicationStatements(ctx context.Context, patientID string) ([]responses.MedicationStatement, error)
	CreateAllergy(ctx context.Context, request *requests.CreateAllergy) (*responses.Allergy, error)
	CreateCondition(ctx context.Context, request *requests.CreateCondition) (*responses.Condition, error)
	CreateDiagnosticReport(ctx context.Context, request *requests.CreateDiagnosticReport) (*responses.DiagnosticReport, error)
	CreateMedicationStatement(ctx context.Context, request *requests.CreateMedicationStatement) (*responses.MedicationStatement, error)
	GetPatientDetails(ctx context.Context, patientID string) (*responses.PatientDetails, error)
}
