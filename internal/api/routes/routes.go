// Package routes handles the setup and configuration of API routes
package routes

import (
	"log/slog"
	"net/http"

	_ "nnpredictor/docs" // Import swagger docs
	"nnpredictor/internal/api/handlers"
	"nnpredictor/internal/api/middleware"
	"nnpredictor/internal/config"
	"nnpredictor/internal/models"
	"nnpredictor/internal/predictor"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes and their handlers
func SetupRoutes(cfg *config.Config, logger *slog.Logger, p predictor.Predictor) *gin.Engine {
	gin.SetMode(cfg.API.GinMode)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.Compression(cfg.API.CompressionMinLength))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "method not allowed"})
	})

	if cfg.API.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	predictHandler := handlers.NewPredictHandler(p, logger)

	r.GET("/health", healthHandler.Health)
	r.POST("/predict", predictHandler.Predict)

	return r
}
