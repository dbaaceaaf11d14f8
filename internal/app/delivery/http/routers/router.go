package routers

import (
	"careslot-service/internal/app/config"
	"careslot-service/internal/app/delivery/http/controllers"
	"careslot-service/internal/app/delivery/http/middlewares"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	appMiddlewares *middlewares.Middlewares,
	registrationController *controllers.RegistrationController,
	bookingController *controllers.BookingController,
	appointmentController *controllers.AppointmentController,
	slotController *controllers.SlotController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(appMiddlewares.RequestIDMiddleware)
	router.Use(appMiddlewares.Logging(appMiddlewares.Log))
	router.Use(appMiddlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		attachRegistrationRoutes(r, registrationController)
		attachBookingRoutes(r, bookingController)
		attachAppointmentRoutes(r, appMiddlewares, appointmentController)
		attachSlotRoutes(r, slotController)
	})

	attachStaticRoutes(router, internalConfig)
}

// attachStaticRoutes serves the bundled front end: the login page at the
// root and everything else from the static directory.
func attachStaticRoutes(router *chi.Mux, internalConfig *config.InternalConfig) {
	staticDir := internalConfig.App.StaticDir
	loginPage := filepath.Join(staticDir, internalConfig.App.LoginPage)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, loginPage)
	})

	fileServer := http.FileServer(http.Dir(staticDir))
	router.Handle("/static/*", http.StripPrefix("/static/", fileServer))
}
