package services

import (
	"context"
	"log/slog"
	"time"
)

// ReminderScheduler periodically processes due care reminders. Start it once
// at boot; it stops when the context is cancelled.
type ReminderScheduler struct {
	reminders ReminderServiceInterface
	interval  time.Duration
	logger    *slog.Logger
}

// NewReminderScheduler creates a new reminder scheduler
func NewReminderScheduler(reminders ReminderServiceInterface, interval time.Duration, logger *slog.Logger) *ReminderScheduler {
	if interval <= 0 {
		interval = time.Minute
	}

	return &ReminderScheduler{
		reminders: reminders,
		interval:  interval,
		logger:    logger,
	}
}

// Start runs the scheduling loop until ctx is cancelled. It runs one pass
// immediately so reminders overdue at boot fire without waiting a tick.
func (s *ReminderScheduler) Start(ctx context.Context) {
	s.logger.Info("reminder scheduler started", "interval", s.interval)

	s.runOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.runOnce()
		}
	}
}

func (s *ReminderScheduler) runOnce() {
	fired, err := s.reminders.ProcessDueReminders(time.Now())
	if err != nil {
		s.logger.Error("reminder pass failed", "error", err)
		return
	}

	if fired > 0 {
		s.logger.Info("reminder pass completed", "fired", fired)
	}
}
