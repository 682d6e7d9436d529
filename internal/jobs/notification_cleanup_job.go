package jobs

import (
	"context"
	"log/slog"
	"time"

	"kurirkan/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationCleanupJob deletes read notifications older than the retention
// window from the settings. Runs once a day during the quiet hours.
type NotificationCleanupJob struct {
	handler commands.CleanupNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationCleanupJob creates the job that prunes old notifications.
func NewNotificationCleanupJob(handler commands.CleanupNotificationsCommandHandler, logger *slog.Logger) *NotificationCleanupJob {
	return &NotificationCleanupJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "notification_cleanup_job"),
	}
}

// Start schedules the cleanup to run daily at 03:00.
func (j *NotificationCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 3 * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCleanupNotificationsCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification cleanup job misconfigured", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification cleanup job failed", "error", err)
			return
		}
		if removed > 0 {
			j.logger.InfoContext(ctx, "Removed old read notifications", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification cleanup job started (running daily at 03:00)")
	return nil
}

// Stop stops the notification cleanup job.
func (j *NotificationCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification cleanup job stopped")
}
