package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"team-member-service/api"
	"team-member-service/internal/config"
	"team-member-service/internal/database"
	"team-member-service/internal/domain"
	"team-member-service/internal/handler"
	"team-member-service/internal/i18n"
	"team-member-service/internal/metrics"
	"team-member-service/internal/repository"
	"team-member-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown log level %q, using info", cfg.LogLevel)
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	queries := database.New(db)

	// Репозитории
	teamRepo := repository.NewTeamRepository(db, queries)
	developerRepo := repository.NewDeveloperRepository(queries)
	userRepo := repository.NewUserRepository(queries)
	membershipRepo := repository.NewMembershipRepository(db, queries)
	cacheTagRepo := repository.NewCacheTagRepository(queries, logger)

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	appMetrics, err := metrics.New(registry)
	if err != nil {
		logger.Fatalf("Metrics registration failed: %v", err)
	}

	// Use Cases
	labels := usecase.NewLabelResolver(userRepo, logger)
	teamMemberUC := usecase.NewTeamMemberUseCase(teamRepo, developerRepo, membershipRepo, cacheTagRepo, cacheTagRepo, labels, logger)
	removalForms := usecase.NewTeamMemberRemovalFormFactory(
		labels,
		membershipRepo,
		cacheTagRepo,
		i18n.NewTranslator(),
		appMetrics,
		logger,
		domain.TeamType{Label: cfg.TeamTypeLabel, LabelPlural: cfg.TeamTypeLabelPlural},
	)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))

	apiHandler := handler.NewAPIHandler(teamMemberUC, removalForms, appMetrics, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
