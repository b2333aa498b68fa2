package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spendario/spendario-api/internal/container"
	repo "github.com/spendario/spendario-api/internal/domain/repository"
	handlers "github.com/spendario/spendario-api/internal/interface/http"
	"github.com/spendario/spendario-api/internal/interface/middleware"
	"github.com/spendario/spendario-api/pkg/helpers"
)

// ExpenseModule wires the expense CRUD and category read endpoints. All of
// them require a resolved principal.
type ExpenseModule struct {
	Handler *handlers.ExpenseHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewExpenseModule(h *handlers.ExpenseHandler, users repo.UserRepository, jwt *helpers.JWTManager) *ExpenseModule {
	return &ExpenseModule{Handler: h, Users: users, JWT: jwt}
}

func (m *ExpenseModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/expenses", m.Handler.Create)
		auth.GET("/expenses", m.Handler.List)
		auth.GET("/expenses/:id", m.Handler.Get)
		auth.PUT("/expenses/:id", m.Handler.Update)
		auth.DELETE("/expenses/:id", m.Handler.Delete)

		auth.GET("/categories", m.Handler.ListCategories)
	}
}
