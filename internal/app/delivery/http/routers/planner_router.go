package routers

import (
	"citaplan-service/internal/app/delivery/http/middlewares"
	"citaplan-service/internal/app/services/core/planner"

	"github.com/go-chi/chi/v5"
)

func attachPlannerRoutes(router chi.Router, middlewares *middlewares.Middlewares, plannerController *planner.PlannerController) {
	router.With(middlewares.Authenticate).Post("/free-windows", plannerController.PlanFreeWindows)
	router.With(middlewares.Authenticate).Post("/fit", plannerController.FitCheck)
}
