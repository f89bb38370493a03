package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper ends sessions idle for longer than idle.
type Sweeper interface {
	Sweep(idle time.Duration) int
}

// SessionSweepJob discards the carts of sessions nobody has touched for the
// configured TTL.
type SessionSweepJob struct {
	sessions Sweeper
	ttl      time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSessionSweepJob(sessions Sweeper, ttl time.Duration, schedule string, logger *slog.Logger) *SessionSweepJob {
	return &SessionSweepJob{
		sessions: sessions,
		ttl:      ttl,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_sweep_job"),
	}
}

// Run performs one sweep and returns the number of evicted sessions.
func (j *SessionSweepJob) Run(ctx context.Context) int {
	evicted := j.sessions.Sweep(j.ttl)
	if evicted > 0 {
		j.logger.InfoContext(ctx, "Idle sessions evicted", "count", evicted, "ttl", j.ttl.String())
	}
	return evicted
}

func (j *SessionSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweep job started", "schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

func (j *SessionSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session sweep job stopped")
}
