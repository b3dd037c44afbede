package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/climate_dashboard/internal/config"
	v1 "github.com/shenikar/climate_dashboard/internal/handler/http/v1"
	"github.com/shenikar/climate_dashboard/internal/observability"
	"github.com/shenikar/climate_dashboard/internal/repository"
	"github.com/shenikar/climate_dashboard/internal/service"
	"github.com/shenikar/climate_dashboard/internal/webhook"
	"github.com/shenikar/climate_dashboard/pkg/logger"
	"github.com/shenikar/climate_dashboard/pkg/postgres"
	redisclient "github.com/shenikar/climate_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/climate_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Climate Dashboard API
// @version 1.0
// @description Read API for the climate incident dashboard: reports, users, map pins, analytics and alert messaging.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Каталог: PostgreSQL или встроенные демо-данные
	var catalog service.Catalog
	if cfg.DatabaseURL != "" {
		log.Info("Running database migrations...")
		if err := postgres.Migrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		log.Info("Database migrations applied successfully")

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")
		catalog = repository.NewPostgresCatalog(dbpool)
	} else {
		log.Warn("DATABASE_URL is not set, serving built-in demo catalog")
		catalog = repository.NewFixtureCatalog()
	}

	// Redis: кэш страниц и очередь рассылок
	var (
		redisClient *redis.Client
		pageCache   service.PageCache
		publisher   webhook.Publisher
	)
	if cfg.RedisAddr != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisPoolSize)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
		pageCache = repository.NewRedisPageCache(redisClient, cfg.CacheTTL)
		publisher = webhook.NewRedisPublisher(redisClient)
	} else {
		log.Warn("REDIS_ADDR is not set, page cache and gateway delivery are disabled")
		publisher = webhook.NewLogPublisher(log)
	}

	// Инициализация сервисов
	dashboardService := service.NewDashboardService(catalog, pageCache, log, cfg, metrics)
	messageService := service.NewMessageService(catalog, publisher, log, clock, metrics)

	// Воркер доставки оповещений в шлюз
	if redisClient != nil {
		worker := webhook.NewWorker(redisClient, log, cfg, messageService, metrics, clock)
		worker.Start(ctx)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(dashboardService, messageService, log, cfg, clock)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
