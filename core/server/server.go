package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gig-planner/core/cache"
	"gig-planner/core/config"
	"gig-planner/core/database"
	"gig-planner/core/logger"
	coreMiddleware "gig-planner/core/middleware"
	"gig-planner/core/queue"
	"gig-planner/core/storage"
	"gig-planner/modules/auth"
	"gig-planner/modules/calendar"
	"gig-planner/modules/gig"
	gigRepository "gig-planner/modules/gig/repository"
	"gig-planner/modules/mailer"
	"gig-planner/modules/notification"
	"gig-planner/modules/reminder"
	"gig-planner/modules/upload"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run boots the whole service: config, infrastructure, module wiring, the
// background worker and the HTTP listener.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	})
	if err != nil {
		return err
	}

	cacheInstance, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}
	defer cacheInstance.Close()

	redisCfg := queue.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	queueClient := queue.NewClient(redisCfg)
	defer queueClient.Close()
	workerMux := asynq.NewServeMux()

	var store storage.ObjectStore
	if cfg.S3.Bucket != "" {
		store = storage.NewS3Store(storage.S3Config{
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Endpoint:  cfg.S3.Endpoint,
			PublicURL: cfg.S3.PublicURL,
		})
	} else {
		logger.Warn("Server:Run:Storage", "reason", "S3 not configured, uploads disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{cfg.Server.FrontendURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")
	mw := coreMiddleware.NewMiddleware(cacheInstance)

	// Module wiring. The gig repository is shared with the calendar and
	// reminder modules, which only see narrow interfaces over it.
	gigRepo := gigRepository.NewGigRepository(&db)

	notifSvc := notification.Init(v1, &db, mw)
	mailerSvc := mailer.Init(v1, mw)
	dispatchSvc := calendar.Init(v1, &db, mw, gigRepo, mailerSvc)
	reminderSvc := reminder.Init(queueClient, workerMux, gigRepo, notifSvc, mailerSvc)
	gig.Init(v1, &db, mw, notifSvc, dispatchSvc, reminderSvc)
	authRepo := auth.Init(v1, &db, mw, cacheInstance)
	upload.Init(v1, mw, store, authRepo, gigRepo)

	worker := queue.StartWorker(redisCfg, workerMux)
	defer worker.Shutdown()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run:Start:Error", "error", err)
		}
	}()
	logger.Info("Server started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
