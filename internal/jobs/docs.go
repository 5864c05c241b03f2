// Package jobs provides scheduled background tasks for the kitchen backend.
//
// Jobs are driven by github.com/robfig/cron/v3 with seconds enabled, so
// schedules take six fields.
//
// # Available Jobs
//
// SessionSweepJob deletes merchant sessions whose expiry has passed. Expired
// sessions are already refused at authentication time; the sweep only keeps
// the table small.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(sessionHandler, "0 */15 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
