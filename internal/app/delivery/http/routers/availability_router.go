package routers

import (
	"citaplan-service/internal/app/delivery/http/middlewares"
	"citaplan-service/internal/app/services/core/availability"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, availabilityController *availability.AvailabilityController) {
	router.With(middlewares.Authenticate).Put("/{physician_id}/availability", availabilityController.Replace)
	router.With(middlewares.Authenticate).Post("/{physician_id}/availability/check", availabilityController.Check)
}
