package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pingpong/docs"
	"pingpong/internal/config"
	handlers "pingpong/internal/http/handler"
	"pingpong/internal/http/middleware"
	"pingpong/internal/otel"
	"pingpong/internal/service"
	"pingpong/internal/version"
)

// @title Ping-Pong API
// @version 1.0
// @description Minimal demo service for validating the deployment pipeline.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize tracing. Tracing is optional for the demo: any init failure
	// degrades to a noop provider and the endpoints keep serving.
	shutdownTracing, err := otel.Init(ctx, cfg.AppName, time.UTC)
	if err != nil {
		log.Printf("tracing disabled: %v", err)
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	svc := service.NewGreetingService()

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: handlers.ErrorHandler(cfg.Debug),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Version(version.Version))
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	reg := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Use(otelfiber.Middleware())
	// Innermost so a recovered panic still flows through the logger and the
	// request counter as a regular error before the error handler masks it.
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.Debug}))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, cfg.AppName, version.Version, svc)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := net.JoinHostPort(cfg.Host, cfg.Port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()

	log.Printf("%s %s (commit %s, built %s) listening on %s (debug=%v)",
		cfg.AppName, version.Version, version.Commit, version.Date, addr, cfg.Debug)

	select {
	case err := <-errCh:
		// Listen only returns before shutdown on a startup failure such as
		// the port being taken.
		log.Fatalf("failed to start server: %v", err)
	case <-ctx.Done():
		stop()
		log.Printf("shutdown signal received, draining connections")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("forced shutdown: %v", err)
		}
	}
}
