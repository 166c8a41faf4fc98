package routers

import (
	"availability-service/internal/app/delivery/http/controllers"
	"availability-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, tokenLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.With(tokenLimiter.Limit).Post("/token", authController.IssueToken)
}
