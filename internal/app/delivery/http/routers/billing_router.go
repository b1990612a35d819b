package routers

import (
	"ehr-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBillingRoutes(router chi.Router, billingController *controllers.BillingController) {
	router.Get("/account", billingController.GetAccount)
	router.Get("/coverage", billingController.ListCoverage)
}
