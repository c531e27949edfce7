package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"risk-prediction-service/internal/config"
	"risk-prediction-service/internal/domain"
	"risk-prediction-service/internal/handler"
	"risk-prediction-service/internal/middleware"
	"risk-prediction-service/internal/model"
	"risk-prediction-service/internal/registry"
	"risk-prediction-service/internal/repository"
	"risk-prediction-service/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	settings, err := config.LoadSettings(cfg.Settings.Path)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}

	reg, err := registry.New(cfg.Registry.Path)
	if err != nil {
		log.Fatalf("open registry: %v", err)
	}
	log.WithField("path", cfg.Registry.Path).Info("model registry loaded")

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Registry.Watch {
		go func() {
			if err := reg.Watch(rootCtx); err != nil && rootCtx.Err() == nil {
				log.WithError(err).Warn("registry watcher stopped")
			}
		}()
		log.Info("registry watcher enabled")
	}

	// Prediction log (Optional Postgres - based on config)
	var logs domain.PredictionLogRepository
	if cfg.Postgres.Enabled {
		pool, err := pgxpool.New(rootCtx, cfg.Postgres.DSN)
		if err != nil {
			log.Fatalf("create db pool: %v", err)
		}
		defer pool.Close()

		if err := pool.Ping(rootCtx); err != nil {
			log.Fatalf("ping db: %v", err)
		}
		logs = repository.NewPredictionLogRepository(pool)
		log.Info("postgres prediction log enabled")
	} else {
		logs = repository.NewMemoryPredictionLog()
		log.Info("in-memory prediction log enabled")
	}

	requiredColumns := settings.GetStrings("data.required_columns")

	predictionUC := usecase.NewPredictionUseCase(reg, logs, model.NewCache(), requiredColumns, cfg.Inference.Timeout)
	catalogUC := usecase.NewCatalogUseCase(reg)
	analyticsUC := usecase.NewAnalyticsUseCase(logs)

	h := handler.New(predictionUC, catalogUC, analyticsUC)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	h.RegisterRoutes(router)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-rootCtx.Done()
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stdout)
}
