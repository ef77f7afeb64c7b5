package routers

import (
	"cfs-service/internal/app/delivery/http/controllers"
	"cfs-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *controllers.AssessmentController) {
	router.Get("/", assessmentController.List)
	router.Post("/", assessmentController.Create)
	router.With(middlewares.RequireAPIKey).Post("/import", assessmentController.Import)
	router.Get("/{id}", assessmentController.Get)
	router.Put("/{id}", assessmentController.Update)
	router.Delete("/{id}", assessmentController.Delete)
	router.Post("/{id}/edit", assessmentController.StartEdit)
}
