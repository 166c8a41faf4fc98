package routers

import (
	"availability-service/internal/app/config"
	"availability-service/internal/app/delivery/http/controllers"
	"availability-service/internal/app/delivery/http/middlewares"
	"availability-service/internal/pkg/constvars"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	authController *controllers.AuthController,
	availabilityController *controllers.AvailabilityController,
	calendarController *controllers.CalendarController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXAPIKey, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(mw.Log))
	router.Use(mw.APIKeyAuth)

	normalLimiter, apiKeyLimiter := mw.CreateRateLimiters()
	router.Use(mw.ConditionalRateLimit(normalLimiter, apiKeyLimiter))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlain)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(constvars.ResponseHealthOK))
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	// The token endpoint carries its own tight limiter with temporary
	// blocking on top of the global per-IP limit.
	tokenLimiter := middlewares.NewRateLimiter(
		internalConfig.Auth.TokenRateLimit,
		time.Minute,
		time.Duration(internalConfig.Auth.TokenBlockTimeInMinutes)*time.Minute,
	)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, tokenLimiter, authController)
			})

			r.Route("/availability", func(r chi.Router) {
				attachAvailabilityRoutes(r, mw, availabilityController)
			})

			r.Route("/calendar", func(r chi.Router) {
				attachCalendarRoutes(r, mw, calendarController)
			})
		})
	})
}
