// Package jobs provides scheduled background tasks for the job-matching service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance of the in-memory job catalog.
//
// # Available Jobs
//
// 1. CatalogPruneJob - Periodically evicts offers older than the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pruneHandler, retention, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The prune job runs on a configurable cron expression (hourly by default).
// Listing feeds go stale on the order of days, so a tight schedule buys
// nothing; the expression is configuration rather than code.
package jobs
