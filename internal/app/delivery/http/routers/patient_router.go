package routers

import (
	"ehr-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.ListPatients)
	router.Post("/", patientController.CreatePatient)
	router.Get("/{id}", patientController.GetPatient)
	router.Put("/{id}", patientController.UpdatePatient)
	router.Delete("/{id}", patientController.DeletePatient)
}
