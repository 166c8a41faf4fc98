package routers

import (
	"availability-service/internal/app/delivery/http/controllers"
	"availability-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, mw *middlewares.Middlewares, availabilityController *controllers.AvailabilityController) {
	router.With(mw.Authenticate).Post("/next-slot", availabilityController.FindNextSlot)
	router.With(mw.Authenticate).Post("/slots", availabilityController.ListAvailableSlots)
}
