package contracts

import (
	"context"
	"ehr-portal-service/internal/pkg/dto/requests"
	"ehr-portal-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context, query *requests.PageQuery) (*responses.PatientPage, error)
	GetPatient(ctx context.Context, patientID string) (*responses.Patient, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
}
