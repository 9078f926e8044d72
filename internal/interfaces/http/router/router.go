package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RegistrarFunc adapts a plain function to the RouteRegistrar interface
type RegistrarFunc func(rg *gin.RouterGroup)

// RegisterRoutes implements RouteRegistrar
func (f RegistrarFunc) RegisterRoutes(rg *gin.RouterGroup) {
	f(rg)
}

// Router manages HTTP route registration. Registrars are collected first
// and mounted in one pass under the versioned API prefix; protected
// registrars additionally sit behind the configured auth middleware.
type Router struct {
	engine     *gin.Engine
	apiVersion string
	auth       gin.HandlerFunc
	public     []RouteRegistrar
	protected  []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g. "v1")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithAuthMiddleware sets the middleware guarding protected registrars
func WithAuthMiddleware(auth gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.auth = auth
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a public RouteRegistrar
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.public = append(r.public, registrar)
	return r
}

// RegisterProtected adds a RouteRegistrar behind the auth middleware
func (r *Router) RegisterProtected(registrar RouteRegistrar) *Router {
	r.protected = append(r.protected, registrar)
	return r
}

// Setup mounts all registered routes on the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	for _, registrar := range r.public {
		registrar.RegisterRoutes(api)
	}

	guarded := api.Group("")
	if r.auth != nil {
		guarded.Use(r.auth)
	}
	for _, registrar := range r.protected {
		registrar.RegisterRoutes(guarded)
	}
}
