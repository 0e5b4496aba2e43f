package api

import (
	"time"

	"bufferstock/internal/api/handlers"
	"bufferstock/internal/api/middleware"
	"bufferstock/internal/data"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options configures the HTTP API.
type Options struct {
	PresetDir      string
	AllowedOrigins []string
	CacheTTL       time.Duration
	Logger         *zap.Logger
}

// NewRouter wires middleware and handlers into a gin engine.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.ErrorHandler(opts.Logger))

	h := handlers.New(opts.PresetDir, data.NewSolutionCache(opts.CacheTTL), opts.Logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/models", h.ListModels)
		v1.POST("/solve", h.Solve)
		v1.POST("/simulate", h.Simulate)
		v1.POST("/distribution", h.Distribution)
		v1.POST("/estimate", h.Estimate)
	}

	return router
}
