package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds the schedules of the background jobs. Schedules are cron
// expressions with a leading seconds field.
type Config struct {
	SessionTTL        time.Duration
	SweepSchedule     string
	LowStockThreshold int
	LowStockSchedule  string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionSweepJob *SessionSweepJob
	lowStockJob     *LowStockJob
}

func NewJobManager(sessions Sweeper, menu MenuReader, cfg Config, logger *slog.Logger) (*JobManager, error) {
	lowStockJob, err := NewLowStockJob(menu, cfg.LowStockThreshold, cfg.LowStockSchedule, logger)
	if err != nil {
		return nil, err
	}

	return &JobManager{
		sessionSweepJob: NewSessionSweepJob(sessions, cfg.SessionTTL, cfg.SweepSchedule, logger),
		lowStockJob:     lowStockJob,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start session sweep job: %w", err)
	}

	if err := jm.lowStockJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.sessionSweepJob.Stop()
		return fmt.Errorf("failed to start low stock job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.lowStockJob.Stop()
	jm.sessionSweepJob.Stop()
}
