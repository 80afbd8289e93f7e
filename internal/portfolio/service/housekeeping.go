package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tech2saini/portfolio/internal/portfolio/store"
)

// HousekeepingService periodically removes expired sessions and spent or
// expired password-reset tokens so neither table grows without bound.
type HousekeepingService struct {
	Sessions store.Sessions
	Resets   store.PasswordResets
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates the service. An interval of 0 or less
// defaults to 1 hour.
func NewHousekeepingService(sessions store.Sessions, resets store.PasswordResets, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	return &HousekeepingService{
		Sessions: sessions,
		Resets:   resets,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the background worker. Non-blocking; pair with Stop.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping started", "interval", s.Interval)
}

// Stop shuts the worker down and blocks until any in-progress sweep ends.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep deletes expired records. Each deletion is independent so one
// failure does not block the other.
func (s *HousekeepingService) sweep() {
	ctx := context.Background()
	now := time.Now().UTC()

	if err := s.Sessions.DeleteExpiredSessions(ctx, now); err != nil {
		s.Logger.Error("failed to delete expired sessions", "error", err)
	}
	if err := s.Resets.DeleteExpiredPasswordResets(ctx, now); err != nil {
		s.Logger.Error("failed to delete expired password resets", "error", err)
	}
}
