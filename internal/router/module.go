package router

import "github.com/gin-gonic/gin"

// Module is a self-contained feature surface. Each module attaches its own
// routes, with whatever middleware they need, to the shared root group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
