// Package scheduler fires the daily reminder at a fixed wall-clock time in
// the process's local timezone. There is no catch-up: a trigger missed while
// the process was down is simply skipped.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler wraps a cron runner for the recurring bot jobs.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// New creates a stopped scheduler.
func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), logger: logger}
}

// ScheduleDaily registers job to run every day at hour:minute.
func (s *Scheduler) ScheduleDaily(hour, minute int, job func()) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("hour must be between 0 and 23, got %d", hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("minute must be between 0 and 59, got %d", minute)
	}

	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	if _, err := s.cron.AddFunc(spec, job); err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}

	s.logger.Info("daily job scheduled",
		zap.Int("hour", hour), zap.Int("minute", minute))
	return nil
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
