package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/disaster_triage_system/internal/config"
	v1 "github.com/shenikar/disaster_triage_system/internal/handler/http/v1"
	"github.com/shenikar/disaster_triage_system/internal/ml"
	"github.com/shenikar/disaster_triage_system/internal/repository"
	"github.com/shenikar/disaster_triage_system/internal/service"
	"github.com/shenikar/disaster_triage_system/internal/webhook"
	"github.com/shenikar/disaster_triage_system/pkg/logger"
	"github.com/shenikar/disaster_triage_system/pkg/postgres"
	redisclient "github.com/shenikar/disaster_triage_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/disaster_triage_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Disaster Triage System API
// @version 1.0
// @description Intake and triage pipeline for citizen disaster reports.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// startClusterLoop периодически пересчитывает кластеры открытых инцидентов
func startClusterLoop(ctx context.Context, clusterService service.ClusterService, interval time.Duration, log *logrus.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info("Stopping clustering loop.")
				return
			case <-ticker.C:
				if _, err := clusterService.RunClusteringPass(ctx); err != nil {
					log.WithError(err).Error("Periodic clustering pass failed")
				}
			}
		}
	}()
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisPoolSize)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Адаптер ML-сервиса: классификация снимков и извлечение сущностей
	mlClient := ml.NewClient(cfg.MLServiceURL, cfg.MLTimeout, cfg.EntityConfidenceThreshold, cfg.EmbeddingDim)
	if err := mlClient.Health(ctx); err != nil {
		log.WithError(err).Warn("ML service is unavailable at startup, triage will run degraded")
	}

	// Инициализация издателя алертов
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)

	// Инициализация и запуск воркера доставки алертов
	alertWorker := webhook.NewAlertWorker(redisClient, log, cfg)
	alertWorker.Start(ctx)

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.DashboardCacheTTL)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, mlClient, mlClient, alertPublisher, log, cfg)
	clusterService := service.NewClusterService(incidentRepo, log, cfg)
	dashboardService := service.NewDashboardService(incidentRepo, clusterService, log, cfg)

	// Периодический пересчёт кластеров
	startClusterLoop(ctx, clusterService, cfg.ClusterInterval, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, dashboardService, clusterService, mlClient, log, cfg)

	if len(cfg.APIKeys) == 0 {
		log.Warn("API_KEYS is empty, API authentication is disabled")
	}

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
