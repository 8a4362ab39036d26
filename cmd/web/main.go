package main

import (
	"context"
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"devtools/internal/cache"
	"devtools/internal/cache/mem"
	redisCache "devtools/internal/cache/redis"
	"devtools/internal/config"
	"devtools/internal/http/handler"
	"devtools/internal/http/middleware"
	"devtools/internal/otel"
	"devtools/internal/service"
	"devtools/internal/web"
)

func main() {
	cfg := config.Load()

	shutdownTracer, err := otel.Init(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("tracer shutdown: %v", err)
		}
	}()

	// Redis is optional; without it history, stats and snippets live in
	// process memory and vanish on restart.
	var store cache.Cache
	if cfg.Redis.Addr != "" {
		store = redisCache.New(cfg.Redis)
	} else {
		store = mem.New()
	}

	engine, err := web.NewEngine()
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: handler.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(prom.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handler.RegisterRoutes(app, handler.Services{
		UUID:      service.NewUUIDService(),
		JWT:       service.NewJWTService(),
		Base64:    service.NewBase64Service(),
		Hash:      service.NewHashService(),
		Timestamp: service.NewTimestampService(),
		Regex:     service.NewRegexService(),
		Cron:      service.NewCronService(),
		Snippets:  service.NewSnippetService(store, cfg.Tools),
		Usage:     service.NewUsageService(store, cfg.Tools),
		Store:     store,
	})

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
