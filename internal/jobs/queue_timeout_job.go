package jobs

import (
	"context"
	"log/slog"
	"time"

	"kurirkan/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// QueueTimeoutJob cancels pending orders that no driver picked up within the
// configured timeout. Runs every minute; the timeout itself comes from the
// application settings, so operators can tune it without a restart.
type QueueTimeoutJob struct {
	handler commands.ExpirePendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQueueTimeoutJob creates the job that expires stale pending orders.
func NewQueueTimeoutJob(handler commands.ExpirePendingOrdersCommandHandler, logger *slog.Logger) *QueueTimeoutJob {
	return &QueueTimeoutJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "queue_timeout_job"),
	}
}

// Start schedules the expiry check to run every minute.
func (j *QueueTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpirePendingOrdersCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue timeout job misconfigured", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue timeout job failed", "error", err)
			return
		}
		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale pending orders", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue timeout job started (running every minute)")
	return nil
}

// Stop stops the queue timeout job.
func (j *QueueTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue timeout job stopped")
}
