package queue

import (
	"gig-planner/core/logger"

	"github.com/hibiken/asynq"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewClient returns an asynq client for enqueueing background tasks.
func NewClient(cfg RedisConfig) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// StartWorker runs the asynq server with the given mux in a goroutine.
// Handlers are registered by modules before this is called.
func StartWorker(cfg RedisConfig, mux *asynq.ServeMux) *asynq.Server {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("Queue:Worker:Stopped", "error", err)
		}
	}()

	logger.Info("Queue worker started", "addr", cfg.Addr)
	return srv
}
