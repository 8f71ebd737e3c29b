package main // Entry point package

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/theatre-catalog/internal/config"
	"github.com/iliyamo/theatre-catalog/internal/database"
	"github.com/iliyamo/theatre-catalog/internal/exporter"
	"github.com/iliyamo/theatre-catalog/internal/handler"
	"github.com/iliyamo/theatre-catalog/internal/importer"
	"github.com/iliyamo/theatre-catalog/internal/middleware"
	"github.com/iliyamo/theatre-catalog/internal/queue"
	"github.com/iliyamo/theatre-catalog/internal/repository"
	"github.com/iliyamo/theatre-catalog/internal/router"
	queue_publisher "github.com/iliyamo/theatre-catalog/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	repo := repository.NewCatalogRepo(db)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; export cache disabled")
	}
	cache := middleware.NewExportCache(config.LoadCacheConfig(), rdb)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var pub handler.EventPublisher
	if cfg.QueueEnabled {
		pub = &queue_publisher.Publisher{URL: cfg.RabbitURL}
		consumer := &queue.Consumer{URL: cfg.RabbitURL, LogDir: cfg.EventLogDir}
		go func() {
			if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("import-consumer: stopped: %v", err)
			}
		}()
	}

	h := handler.NewCatalogHandler(importer.New(repo), exporter.New(repo), cache, pub, cfg.MaxImportBytes)

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Printf("http: %s %s status=%d latency=%s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	router.RegisterRoutes(e)
	router.RegisterCatalog(e, h, cache.Middleware())

	go func() {
		<-ctx.Done()
		if err := e.Shutdown(context.Background()); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
