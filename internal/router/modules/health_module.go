package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/spendario/spendario-api/internal/interface/http"
)

// HealthModule exposes the unauthenticated liveness probe.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", handlers.Health)
}
