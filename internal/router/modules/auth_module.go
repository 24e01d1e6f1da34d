package modules

import (
	"github.com/gin-gonic/gin"

	handlers "inventory-management/internal/interface/http"
)

// AuthModule wires the public authentication endpoints:
// POST /api/auth/register and POST /api/auth/login.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)
}
