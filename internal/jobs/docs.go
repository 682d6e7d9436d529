// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. QueueTimeoutJob - Runs every minute to cancel pending orders that sat in the queue past the configured timeout
// 2. NotificationCleanupJob - Runs daily to delete read notifications older than the retention window
// 3. SnapshotJob - Runs every 30 seconds to persist the full in-memory state through the collection store
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireHandler, cleanupHandler, state, store, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Expiry and cleanup jobs log failures and retry on the next tick
// - The snapshot job writes one final snapshot during Stop so a clean shutdown never loses state
// - Failed job starts will stop any already running jobs
package jobs
