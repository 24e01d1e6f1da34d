package modules

import (
	"github.com/gin-gonic/gin"

	handlers "inventory-management/internal/interface/http"
	"inventory-management/internal/interface/middleware"
	"inventory-management/pkg/helpers"
)

// UserModule wires the token-protected user CRUD surface:
// GET /api/profile, GET /api/users, GET /api/users/:id,
// PUT /api/users/:id, DELETE /api/users/:id, GET /api/search/users.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/profile", m.Handler.GetProfile)
		auth.GET("/users", m.Handler.List)
		auth.GET("/users/:id", m.Handler.Get)
		auth.PUT("/users/:id", m.Handler.Update)
		auth.DELETE("/users/:id", m.Handler.Delete)
		// lives outside /users to avoid clashing with the :id wildcard
		auth.GET("/search/users", m.Handler.Search)
	}
}
