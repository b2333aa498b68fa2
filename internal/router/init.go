package router

import (
	"github.com/spendario/spendario-api/internal/application"
	"github.com/spendario/spendario-api/internal/container"
	pginfra "github.com/spendario/spendario-api/internal/infrastructure/postgres"
	handlers "github.com/spendario/spendario-api/internal/interface/http"
	"github.com/spendario/spendario-api/internal/router/modules"
)

// InitModules builds repositories, services and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(pool)
	categories := pginfra.NewCategoryRepository(pool)
	expenses := pginfra.NewExpenseRepository(pool)

	authSvc := application.NewAuthService(users, jwt, logger)
	expenseSvc := application.NewExpenseService(expenses, categories, logger)

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), users, jwt))
	r.Add(modules.NewExpenseModule(handlers.NewExpenseHandler(expenseSvc, logger), users, jwt))
}
