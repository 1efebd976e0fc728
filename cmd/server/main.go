package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-envconfig"

	"github.com/astroqml/galaxyq/internal/api"
	"github.com/astroqml/galaxyq/internal/config"
	"github.com/astroqml/galaxyq/internal/trainer"
	"github.com/astroqml/galaxyq/internal/utils/logger"
)

type serverEnv struct {
	Host       string `env:"SERVER_HOST, default=127.0.0.1"`
	Port       int    `env:"SERVER_PORT, default=8080"`
	BodyLimit  int    `env:"SERVER_BODY_LIMIT, default=4194304"`
	ParamsPath string `env:"PARAMS_PATH, default=params.json"`
}

func main() {
	logger.Init()
	log.Info().Msg("Starting inference server...")

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env not loaded; continuing with existing environment")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var env serverEnv
	if err := envconfig.Process(ctx, &env); err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}

	params, err := trainer.LoadParams(env.ParamsPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", env.ParamsPath).Msg("failed to load trained parameters; run cmd/classifier first")
	}

	cfg := config.ServerEnvConfig{
		Address:       env.Host,
		Port:          env.Port,
		BodySizeLimit: env.BodyLimit,
		ParamsPath:    env.ParamsPath,
	}

	server, err := api.NewServer(cfg, params)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info().Msg("shutdown signal received, stopping server")
		cancel()
	}()

	log.Info().Str("host", env.Host).Int("port", env.Port).Msg("serving")
	if err := server.Start(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown with error")
	}
}
