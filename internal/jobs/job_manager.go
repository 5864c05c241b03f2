package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	sessionSweepJob *SessionSweepJob
}

// NewJobManager wires every job to the handlers it drives.
func NewJobManager(purger SessionPurger, sweepSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		sessionSweepJob: NewSessionSweepJob(purger, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start session sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionSweepJob.Stop()
}
