package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultSessionSweepSchedule runs the sweep every fifteen minutes.
const DefaultSessionSweepSchedule = "0 */15 * * * *"

// SessionPurger is satisfied by commands.SessionCommandHandler.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// SessionSweepJob periodically removes expired merchant sessions.
type SessionSweepJob struct {
	purger   SessionPurger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSessionSweepJob(purger SessionPurger, schedule string, logger *slog.Logger) *SessionSweepJob {
	if schedule == "" {
		schedule = DefaultSessionSweepSchedule
	}
	return &SessionSweepJob{
		purger:   purger,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_sweep_job"),
	}
}

// Run performs one sweep.
func (j *SessionSweepJob) Run(ctx context.Context) {
	purged, err := j.purger.PurgeExpired(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session sweep failed", "error", err)
		return
	}
	if purged > 0 {
		j.logger.InfoContext(ctx, "Expired sessions purged", "count", purged)
	}
}

// Start registers the sweep on its schedule and starts the scheduler.
func (j *SessionSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweep job started", "schedule", j.schedule)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (j *SessionSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session sweep job stopped")
}
