package routers

import (
	"ehr-portal-service/internal/app/delivery/http/controllers"
	"ehr-portal-service/internal/pkg/fhirmapper"

	"github.com/go-chi/chi/v5"
)

func attachClinicalRoutes(router chi.Router, clinicalController *controllers.ClinicalController) {
	router.Get("/", clinicalController.GetPatientDetails)
	for _, kind := range fhirmapper.ClinicalKinds {
		router.Get("/"+string(kind), clinicalController.ListRecords(kind))
		router.Post("/"+string(kind), clinicalController.CreateRecord(kind))
	}
}
