package router

import (
	"context"
	"errors"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/Aleph-Alpha/infra-showcase/v1/logger"
	"github.com/Aleph-Alpha/infra-showcase/v1/metrics"
	"github.com/Aleph-Alpha/infra-showcase/v1/tracer"
)

const appName = "infra-showcase"

// Server owns the fiber app and its listener.
type Server struct {
	app *fiber.App
	cfg Config
	log logger.Logger

	ln net.Listener
}

// NewServer builds the fiber app with middleware and all routes mounted.
// tr and m are optional.
func NewServer(cfg Config, h *Handler, log logger.Logger, tr *tracer.Tracer, m metrics.MetricsCollector) *Server {
	cfg = cfg.withDefaults()

	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(observe(log, tr, m))
	app.Use(recover.New())

	h.Register(app)

	return &Server{app: app, cfg: cfg, log: log}
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start binds the listen address and serves in the background. A bind
// failure is returned synchronously.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return err
	}
	s.ln = ln

	s.log.Info("http server listening", nil, map[string]interface{}{"address": ln.Addr().String()})
	go func() {
		if err := s.app.Listener(ln); err != nil && !errors.Is(err, net.ErrClosed) {
			s.log.Error("http server stopped", err, nil)
		}
	}()
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.cfg.Address
}

// Shutdown stops accepting connections and waits for in-flight requests,
// bounded by ctx and ShutdownTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	s.log.Info("shutting down http server", nil, nil)
	return s.app.ShutdownWithContext(ctx)
}
