package router

import "github.com/gin-gonic/gin"

// Registry collects modules and group-level middleware, then mounts
// everything under /api in one pass.
type Registry struct {
	Engine *gin.Engine
	API    *gin.RouterGroup

	mws  []gin.HandlerFunc
	mods []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Use queues middleware that applies to every module's routes.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.mws = append(r.mws, mw...)
}

func (r *Registry) Add(mods ...Module) {
	r.mods = append(r.mods, mods...)
}

// RegisterAll attaches the queued middleware and then each module's
// routes. Call it once, after all Add calls.
func (r *Registry) RegisterAll() {
	r.API.Use(r.mws...)
	for _, m := range r.mods {
		m.Register(r.API)
	}
}
