// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SessionSweepJob - Drops the order contexts, and the stored lines, of
// sessions nobody opened within the configured time to live. Sessions with a
// live event stream are kept.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, "0 * * * * *", 30*time.Minute, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field.
//
// # Error Handling
//
// Failed sweeps are logged; sessions that could not be evicted are retried on
// the next run.
package jobs
