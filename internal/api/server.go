package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/investment-projector/internal/calculation"
	"go.uber.org/zap"
)

// NewRouter wires the projection routes.
func NewRouter(engine *calculation.CalculationEngine, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	handler := NewProjectionHandler(engine)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/projection", handler.GetProjection)
	api.POST("/projection", handler.PostProjection)
	api.GET("/defaults", handler.GetDefaults)

	return r
}

// NewServer creates an HTTP server with all routes configured.
func NewServer(addr string, engine *calculation.CalculationEngine, logger *zap.Logger) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      NewRouter(engine, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
