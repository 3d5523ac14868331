// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for COD settlement.
//
// # Available Jobs
//
// 1. SettlementBatchJob - Runs nightly to batch collected COD records into
// pending settlements, one batch per merchant
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(listUnsettledHandler, createSettlementHandler, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The settlement batch schedule is a six-field cron expression (with
// seconds) taken from configuration, typically "0 0 2 * * *" for a 02:00
// nightly run.
//
// # Error Handling
//
// - A merchant whose previous settlement is still pending is skipped; the
// records stay unbatched until the next run
// - Per-merchant failures are logged and do not abort the run
package jobs
