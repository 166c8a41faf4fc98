package routers

import (
	"availability-service/internal/app/delivery/http/controllers"
	"availability-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCalendarRoutes(router chi.Router, mw *middlewares.Middlewares, calendarController *controllers.CalendarController) {
	router.With(mw.Authenticate).Post("/working-days", calendarController.WorkingDays)
	router.With(mw.Authenticate).Post("/next-working-day", calendarController.NavigateWorkingDay)
}
