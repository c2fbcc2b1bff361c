package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/fuzumoe/gopaginate/docs"
	"github.com/fuzumoe/gopaginate/internal/logging"
	"github.com/fuzumoe/gopaginate/internal/metrics"
)

// RouteRegistrar defines anything that can wire its routes into a Gin group.
type RouteRegistrar interface {
	// RegisterRoutes should add one or more routes on the provided router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// RegisterRoutes wires up middleware, operational endpoints, root-level
// registrars (health) and the /api/v1 registrars. m may be nil.
func RegisterRoutes(
	r *gin.Engine,
	m *metrics.Metrics,
	rootRegs []RouteRegistrar,
	apiRegs []RouteRegistrar,
) {
	// Global middleware
	r.Use(logging.GinLogger(), gin.Recovery())
	if m != nil {
		r.Use(m.Middleware())
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root := r.Group("")
	for _, reg := range rootRegs {
		reg.RegisterRoutes(root)
	}

	api := r.Group("/api/v1")
	for _, reg := range apiRegs {
		reg.RegisterRoutes(api)
	}
}
