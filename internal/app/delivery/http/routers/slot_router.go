package routers

import (
	"careslot-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, slotController *controllers.SlotController) {
	router.Get("/slots", slotController.FindSlots)
}
