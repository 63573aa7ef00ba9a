package v1

import (
	"github.com/gin-gonic/gin"

	"proxypool-server/internal/interfaces/httpserver/handlers"
	"proxypool-server/internal/interfaces/httpserver/middlewares"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers    *handlers.Provider
	rateLimiter *middlewares.RateLimiter
}

func NewRoutes(provider *handlers.Provider, rateLimiter *middlewares.RateLimiter) *Routes {
	return &Routes{handlers: provider, rateLimiter: rateLimiter}
}

// Register attaches all v1 routes under the /v1 prefix.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/v1")
	group.GET("/proxies", r.handlers.Proxy.List)
	group.GET("/proxy/random", r.handlers.Proxy.Random)
	group.GET("/stats", r.handlers.Proxy.Stats)
	group.GET("/health", r.handlers.Proxy.Health)
	group.POST("/refresh", r.rateLimiter.Middleware(), r.handlers.Proxy.Refresh)
}
