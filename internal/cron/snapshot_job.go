package cron

import (
	"context"
	"fmt"

	"github.com/streetify/streetify-backend/internal/state"
	"github.com/streetify/streetify-backend/pkg/logger"
)

type stateSource interface {
	Snapshot() state.RootState
}

type snapshotSaver interface {
	Save(ctx context.Context, userID string, root state.RootState) error
}

// SnapshotJobParams configure the persistence job.
type SnapshotJobParams struct {
	Logger    *logger.Logger
	Store     stateSource
	Persister snapshotSaver
}

// NewSnapshotJob builds the job that persists the current user's state tree
// to Redis. With nobody signed in there is nothing to key the snapshot by,
// so the cycle is a no-op.
func NewSnapshotJob(params SnapshotJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("state store required")
	}
	if params.Persister == nil {
		return nil, fmt.Errorf("persister required")
	}
	return &snapshotJob{
		logg:      params.Logger,
		store:     params.Store,
		persister: params.Persister,
	}, nil
}

type snapshotJob struct {
	logg      *logger.Logger
	store     stateSource
	persister snapshotSaver
}

func (j *snapshotJob) Name() string { return "state-snapshot" }

func (j *snapshotJob) Run(ctx context.Context) error {
	root := j.store.Snapshot()
	if root.Users.CurrentUser == nil {
		return nil
	}

	userID := root.Users.CurrentUser.ID
	if err := j.persister.Save(ctx, userID, root); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	j.logg.Info(j.logg.WithUserID(ctx, userID), "state snapshot persisted")
	return nil
}
