package jobs

import (
	"context"
	"log/slog"

	"kurirkan/internal/adapters/out/storage"
	"kurirkan/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SnapshotJob periodically writes the full in-memory state through the
// collection store. Units of work persist their own changes on commit; the
// snapshot is the safety net that re-persists everything in case a commit's
// write failed after the memory update was already applied.
type SnapshotJob struct {
	state  *storage.State
	store  ports.CollectionStore
	cron   *cron.Cron
	logger *slog.Logger
}

// NewSnapshotJob creates the job that snapshots state into the store.
func NewSnapshotJob(state *storage.State, store ports.CollectionStore, logger *slog.Logger) *SnapshotJob {
	return &SnapshotJob{
		state:  state,
		store:  store,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "snapshot_job"),
	}
}

// Start schedules the snapshot to run every 30 seconds.
func (j *SnapshotJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		if err := j.state.PersistAll(ctx, j.store); err != nil {
			j.logger.ErrorContext(ctx, "State snapshot failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot job started (running every 30 seconds)")
	return nil
}

// Stop stops the snapshot job after writing one final snapshot.
func (j *SnapshotJob) Stop() {
	j.cron.Stop()

	ctx := context.Background()
	if err := j.state.PersistAll(ctx, j.store); err != nil {
		j.logger.ErrorContext(ctx, "Final state snapshot failed", "error", err)
	}
	j.logger.InfoContext(ctx, "Snapshot job stopped")
}
