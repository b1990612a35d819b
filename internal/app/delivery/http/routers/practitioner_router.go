package routers

import (
	"ehr-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPractitionerRoutes(router chi.Router, practitionerController *controllers.PractitionerController) {
	router.Get("/{id}", practitionerController.GetPractitioner)
}
