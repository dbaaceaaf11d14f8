package routers

import (
	"careslot-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, bookingController *controllers.BookingController) {
	router.Post("/book", bookingController.CreateBooking)
	router.Post("/appointments", bookingController.CreateAppointmentRaw)
}
