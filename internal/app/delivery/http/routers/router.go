package routers

import (
	"fmt"

	"citaplan-service/internal/app/config"
	"citaplan-service/internal/app/delivery/http/middlewares"
	"citaplan-service/internal/app/services/core/availability"
	"citaplan-service/internal/app/services/core/planner"
	"citaplan-service/internal/app/services/core/schemas"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	plannerController *planner.PlannerController,
	schemaController *schemas.SchemaController,
	availabilityController *availability.AvailabilityController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	generalLimiter, commitLimiter := middlewares.CreateRateLimiters()
	router.Use(generalLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/planner", func(r chi.Router) {
				attachPlannerRoutes(r, middlewares, plannerController)
			})

			r.Route("/schemas", func(r chi.Router) {
				attachSchemaRoutes(r, middlewares, commitLimiter, schemaController)
			})

			r.Route("/physicians", func(r chi.Router) {
				attachAvailabilityRoutes(r, middlewares, availabilityController)
			})
		})
	})
}
