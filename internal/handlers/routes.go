package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"eyewear-ai-proxy/internal/config"
	"eyewear-ai-proxy/internal/middleware"
)

// ServiceName is reported by the health endpoint
const ServiceName = "eyewear-ai-proxy"

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Config *config.Config
	Router *Router
}

// SetupRoutes configures all routes of the dev server
func SetupRoutes(engine *gin.Engine, cfg *RouterConfig) {
	// gin's redirects bypass middleware; the Router normalizes paths itself.
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	// Swagger documentation
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"service":     ServiceName,
			"environment": cfg.Config.Environment,
			"timestamp":   time.Now().UTC(),
		})
	})

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Proxy routes accept any method so the router can answer 405 itself
	proxy := cfg.Router.GinHandler()
	for _, path := range cfg.Router.Paths() {
		engine.Any(path, proxy)
	}
	engine.NoRoute(proxy)
}

// SetupMiddleware configures global middleware
func SetupMiddleware(engine *gin.Engine, cfg *config.Config) {
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(CORSHeaders))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.RequestSizeLimit(cfg.MaxBodyBytes))
	engine.Use(middleware.StructuredLogger())
}
