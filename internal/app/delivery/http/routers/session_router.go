package routers

import (
	"cfs-service/internal/app/delivery/http/controllers"
	"cfs-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, sessionController *controllers.SessionController) {
	router.Post("/", sessionController.Start)

	router.Route("/current", func(r chi.Router) {
		r.Use(middlewares.SessionToken)
		r.Get("/", sessionController.Get)
		r.Delete("/", sessionController.Discard)
		r.Put("/answers/{field}", sessionController.SetAnswer)
		r.Delete("/answers/{field}", sessionController.ClearAnswer)
		r.Put("/basic-details", sessionController.UpdateBasicDetails)
		r.Post("/calculate", sessionController.Calculate)
		r.Post("/save", sessionController.Save)
	})
}
