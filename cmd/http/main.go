package main

import (
	"careslot-service/internal/app/config"
	"careslot-service/internal/app/delivery/http/controllers"
	"careslot-service/internal/app/delivery/http/middlewares"
	"careslot-service/internal/app/delivery/http/routers"
	"careslot-service/internal/app/drivers/logger"
	"careslot-service/internal/app/models"
	coreAppointments "careslot-service/internal/app/services/core/appointments"
	"careslot-service/internal/app/services/core/bookings"
	"careslot-service/internal/app/services/core/registrations"
	coreSlots "careslot-service/internal/app/services/core/slots"
	fhirAppointments "careslot-service/internal/app/services/fhir_spark/appointments"
	"careslot-service/internal/app/services/fhir_spark/patients"
	"careslot-service/internal/app/services/fhir_spark/persons"
	fhirSlots "careslot-service/internal/app/services/fhir_spark/slots"
	"careslot-service/internal/app/services/shared/authorization"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Slot catalog
	slotCatalog := models.NewSlotCatalogFromJSON(bootstrap.InternalConfig.Slots.CatalogJSON)

	// Admin authorization
	adminAuth := authorization.NewQueryPasswordChecker(bootstrap.InternalConfig.Admin.Password)

	// Middlewares
	appMiddlewares := middlewares.New(bootstrap.Logger, adminAuth, bootstrap.InternalConfig)

	// FHIR clients
	personFhirClient := persons.NewPersonFhirClient(bootstrap.InternalConfig.FHIR.BaseUrl, bootstrap.Logger)
	patientFhirClient := patients.NewPatientFhirClient(bootstrap.InternalConfig.FHIR.BaseUrl, bootstrap.Logger)
	appointmentFhirClient := fhirAppointments.NewAppointmentFhirClient(bootstrap.InternalConfig.FHIR.BaseUrl, bootstrap.Logger)
	slotFhirClient := fhirSlots.NewSlotFhirClient(bootstrap.InternalConfig.FHIR.BaseUrl, bootstrap.Logger)

	// Registration
	registrationUsecase := registrations.NewRegistrationUsecase(personFhirClient, patientFhirClient, bootstrap.Logger)
	registrationController := controllers.NewRegistrationController(bootstrap.Logger, registrationUsecase)

	// Booking
	bookingUsecase := bookings.NewBookingUsecase(appointmentFhirClient, slotFhirClient, slotCatalog, bootstrap.Logger)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase, appointmentFhirClient)

	// Appointment summaries and patient directory
	appointmentUsecase := coreAppointments.NewAppointmentUsecase(appointmentFhirClient, patientFhirClient, slotCatalog, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Slots
	slotUsecase := coreSlots.NewSlotUsecase(slotFhirClient, slotCatalog, bootstrap.Logger)
	slotController := controllers.NewSlotController(bootstrap.Logger, slotUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		registrationController,
		bookingController,
		appointmentController,
		slotController,
	)
}
