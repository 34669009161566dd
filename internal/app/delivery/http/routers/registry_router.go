package routers

import (
	"registro-service/internal/app/delivery/http/middlewares"
	"registro-service/internal/app/services/registry"

	"github.com/go-chi/chi/v5"
)

func attachRegistryRoutes(router chi.Router, middlewares *middlewares.Middlewares, registryController *registry.RegistryController) {
	router.With(middlewares.RequireAPIKey).Get("/search", registryController.SearchPatients)
	router.With(middlewares.RequireAPIKey).Post("/resolve", registryController.ResolvePatient)
}
