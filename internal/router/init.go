package router

import (
	userapp "inventory-management/internal/application"
	"inventory-management/internal/container"
	pginfra "inventory-management/internal/infrastructure/postgres"
	handlers "inventory-management/internal/interface/http"
	"inventory-management/internal/router/modules"
)

func buildService() *userapp.Service {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	return userapp.NewService(
		repo,
		container.GetJWT(),
		container.GetRedis(),
		container.GetLogger(),
		container.GetES(),
		container.GetConfig().ESUsersIndex,
	)
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	svc := buildService()
	logger := container.GetLogger()

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(svc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(svc, logger), container.GetJWT()))
}
