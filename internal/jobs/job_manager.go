package jobs

import (
	"fmt"
	"log/slog"

	"kurirkan/internal/adapters/out/storage"
	"kurirkan/internal/core/application/usecases/commands"
	"kurirkan/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	queueTimeoutJob        *QueueTimeoutJob
	notificationCleanupJob *NotificationCleanupJob
	snapshotJob            *SnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers and the persistence pair as dependencies.
func NewJobManager(
	expireHandler commands.ExpirePendingOrdersCommandHandler,
	cleanupHandler commands.CleanupNotificationsCommandHandler,
	state *storage.State,
	store ports.CollectionStore,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		queueTimeoutJob:        NewQueueTimeoutJob(expireHandler, logger),
		notificationCleanupJob: NewNotificationCleanupJob(cleanupHandler, logger),
		snapshotJob:            NewSnapshotJob(state, store, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.queueTimeoutJob.Start(); err != nil {
		return fmt.Errorf("failed to start queue timeout job: %w", err)
	}

	if err := jm.notificationCleanupJob.Start(); err != nil {
		jm.queueTimeoutJob.Stop()
		return fmt.Errorf("failed to start notification cleanup job: %w", err)
	}

	if err := jm.snapshotJob.Start(); err != nil {
		jm.notificationCleanupJob.Stop()
		jm.queueTimeoutJob.Stop()
		return fmt.Errorf("failed to start snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotJob.Stop()
	jm.notificationCleanupJob.Stop()
	jm.queueTimeoutJob.Stop()
}
