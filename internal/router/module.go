package router

import "github.com/gin-gonic/gin"

// Module is a self-contained feature that hangs its routes off the
// shared /api group.
type Module interface {
	Register(api *gin.RouterGroup)
}
