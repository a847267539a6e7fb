// Package main provides the entry point for the NN Predictor API server
// @title NN Predictor API
// @version 1.0.0
// @description Toy API that simulates a neural network prediction by returning a random price.
// @BasePath /
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"nnpredictor/docs"
	"nnpredictor/internal/api/routes"
	"nnpredictor/internal/api/server"
	"nnpredictor/internal/config"
	"nnpredictor/internal/logging"
	"nnpredictor/internal/predictor"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const defaultEnvFile = ".env"

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("Server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	var envFile string

	return &cli.Command{
		Name:    "nnpredictor",
		Usage:   docs.SwaggerInfo.Description,
		Version: docs.SwaggerInfo.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "env",
				Usage:       "Path to env file",
				Value:       defaultEnvFile,
				Destination: &envFile,
			},
		},
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			if err := godotenv.Load(envFile); err != nil {
				// The default file is optional; an explicit one is not
				if envFile != defaultEnvFile || !errors.Is(err, fs.ErrNotExist) {
					return ctx, goerr.Wrap(err, "failed to load env file", goerr.V("path", envFile))
				}
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, _ *cli.Command) error {
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		return goerr.Wrap(err, "failed to load configuration")
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return goerr.Wrap(err, "failed to configure logger")
	}
	slog.SetDefault(logger)

	router := routes.SetupRoutes(cfg, logger, predictor.NewRandom())
	srv := server.New(cfg.API, router, logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
