package routers

import (
	"ehr-portal-service/internal/app/delivery/http/controllers"
	"ehr-portal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/signup", authController.Signup)
	router.With(middlewares.Authenticate).Get("/me", authController.Me)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
