// Package api serves classification over HTTP: trained parameters are loaded
// once at startup and every request runs the same deterministic pipeline.
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/astroqml/galaxyq/internal/ansatz"
	"github.com/astroqml/galaxyq/internal/config"
	"github.com/astroqml/galaxyq/internal/trainer"
)

type Server struct {
	app    *fiber.App
	cfg    config.ServerEnvConfig
	params *trainer.Params
	topo   ansatz.Topology
}

// NewServer wires the fiber app around a trained model. The params must
// rebuild a valid topology; a server without a usable model is refused.
func NewServer(cfg config.ServerEnvConfig, params *trainer.Params) (*Server, error) {
	if params == nil {
		return nil, fmt.Errorf("api: params cannot be nil")
	}
	topo, err := params.Topology()
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		BodyLimit:    cfg.BodySizeLimit,
	})

	app.Use(recover.New())
	app.Use(ZstdMiddleware())

	s := &Server{app: app, cfg: cfg, params: params, topo: topo}
	app.Get("/health", s.handleHealth)
	app.Post("/classify", s.handleClassify)
	return s, nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Error().Err(err).Int("status_code", code).Str("path", c.Path()).Msg("request failed")
	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}

// Start listens until the context is cancelled, then shuts down.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port)
	go func() {
		if err := s.app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("server listen failed")
		}
	}()
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

func (s *Server) Shutdown(_ context.Context) error {
	return s.app.Shutdown()
}
