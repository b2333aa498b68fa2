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

// AuthModule wires registration, login and the current-principal endpoint.
// Public: POST /auth/register, POST /auth/login
// Protected: GET /auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, users repo.UserRepository, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Users: users, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints get tight per-IP limits; registration also
	// per-path so login attempts do not consume its budget.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	{
		auth.GET("/auth/me", m.Handler.Me)
	}
}
