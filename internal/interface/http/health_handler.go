package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health GET /health. Liveness only: no dependency checks, no envelope, so
// probes stay cheap and never fail on a degraded collaborator.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
