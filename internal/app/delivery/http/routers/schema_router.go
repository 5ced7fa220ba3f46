package routers

import (
	"net/http"

	"citaplan-service/internal/app/delivery/http/middlewares"
	"citaplan-service/internal/app/services/core/schemas"

	"github.com/go-chi/chi/v5"
)

func attachSchemaRoutes(router chi.Router, middlewares *middlewares.Middlewares, commitLimiter func(next http.Handler) http.Handler, schemaController *schemas.SchemaController) {
	router.With(middlewares.Authenticate).Get("/", schemaController.FindAll)
	router.With(middlewares.Authenticate).Post("/validate", schemaController.Validate)
	router.With(middlewares.Authenticate, commitLimiter).Post("/", schemaController.Create)
	router.With(middlewares.Authenticate, commitLimiter).Delete("/{schema_id}", schemaController.Delete)
}
