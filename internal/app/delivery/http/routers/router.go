package routers

import (
	"ehr-portal-service/internal/app/config"
	"ehr-portal-service/internal/app/delivery/http/controllers"
	"ehr-portal-service/internal/app/delivery/http/middlewares"
	"ehr-portal-service/internal/pkg/constvars"
	"fmt"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
	practitionerController *controllers.PractitionerController,
	clinicalController *controllers.ClinicalController,
	billingController *controllers.BillingController,
	healthController *controllers.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.CorsAllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.RequestTimeout)

	router.Get("/healthz", healthController.Healthz)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Authenticate)
			r.Use(middlewares.ResolveCredentials)

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, patientController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, appointmentController)
			})

			r.Route("/practitioners", func(r chi.Router) {
				attachPractitionerRoutes(r, practitionerController)
			})

			r.Route("/patient-details", func(r chi.Router) {
				attachClinicalRoutes(r, clinicalController)
			})

			attachBillingRoutes(r, billingController)
		})
	})
}

func allowedOrigins(value string) []string {
	origins := []string{}
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
