package routers

import (
	"cfs-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachScoringRoutes(router chi.Router, scoringController *controllers.ScoringController) {
	router.Get("/levels", scoringController.Levels)
	router.Get("/fields", scoringController.Fields)
	router.Post("/visibility", scoringController.Visibility)
	router.Post("/score", scoringController.Score)
}
