// Package testutil provides utilities for testing
package testutil

import (
	"log/slog"
	"testing"

	"nnpredictor/internal/api/routes"
	"nnpredictor/internal/config"
	"nnpredictor/internal/logging"
	"nnpredictor/internal/predictor"

	"github.com/gin-gonic/gin"
)

// TestContext holds common test dependencies
type TestContext struct {
	T         *testing.T
	Config    *config.Config
	Logger    *slog.Logger
	Predictor predictor.Predictor
	Router    *gin.Engine
}

// Option adjusts the test configuration before the router is built
type Option func(*TestContext)

// WithSwagger toggles the Swagger UI route
func WithSwagger(enabled bool) Option {
	return func(tc *TestContext) {
		tc.Config.API.SwaggerEnabled = enabled
	}
}

// WithPredictor replaces the default random predictor
func WithPredictor(p predictor.Predictor) Option {
	return func(tc *TestContext) {
		tc.Predictor = p
	}
}

// NewTestContext creates a new test context with the full router
func NewTestContext(t *testing.T, opts ...Option) *TestContext {
	t.Helper()

	cfg := config.Default()
	cfg.API.GinMode = gin.TestMode

	tc := &TestContext{
		T:         t,
		Config:    cfg,
		Logger:    logging.Discard(),
		Predictor: predictor.NewRandom(),
	}
	for _, opt := range opts {
		opt(tc)
	}

	tc.Router = routes.SetupRoutes(tc.Config, tc.Logger, tc.Predictor)
	return tc
}
