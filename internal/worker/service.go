package worker

import (
	"context"
	"errors"
	"time"

	"github.com/scentlab/scentlab/internal/config"
	"github.com/scentlab/scentlab/internal/logger"
	"github.com/scentlab/scentlab/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	expiredSweepInterval  = time.Minute
	expiredSweepBatchSize = 100
)

// Service async queue service
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService creates the async queue service
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name service name
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start runs the task server and the expired-order sweep loop
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.OrderService != nil {
		go s.runExpiredSweepLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop stops the task server
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runExpiredSweepLoop backs up the per-order timeout tasks: it catches
// orders whose cancel task was lost while the queue was down.
func (s *Service) runExpiredSweepLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.OrderService == nil {
		return
	}
	runOnce := func() {
		canceled, err := s.consumer.OrderService.SweepExpiredPending(expiredSweepBatchSize)
		if err != nil {
			logger.Warnw("worker_expired_sweep_failed", "error", err)
			return
		}
		if canceled > 0 {
			logger.Infow("worker_expired_sweep_done", "canceled", canceled)
		}
	}
	runOnce()

	ticker := time.NewTicker(expiredSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
