package routers

import (
	"careslot-service/internal/app/delivery/http/controllers"
	"careslot-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appMiddlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(appMiddlewares.RequireAdmin).Get("/patients", appointmentController.FindRecentSummaries)
	router.With(appMiddlewares.RequireAdmin).Get("/patients/directory", appointmentController.FindPatientDirectory)
}
