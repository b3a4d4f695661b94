package services

import (
	"context"
	"errors"
	"testing"

	"budgetly/internal/logger"
	"budgetly/internal/metrics"
	"budgetly/internal/models"
	"budgetly/internal/store"
	"budgetly/internal/testutil"
)

func init() {
	logger.Init("test")
}

// failingPersister rejects every save.
type failingPersister struct{}

func (failingPersister) Load(context.Context) (models.Snapshot, error) {
	return models.Snapshot{}, nil
}

func (failingPersister) Save(context.Context, models.Snapshot) error {
	return errors.New("disk full")
}

// newTestStore returns a store fixed at testutil.Now with a recorder that
// only updates metrics.
func newTestStore(t *testing.T, snap models.Snapshot) (*store.Store, *Recorder) {
	t.Helper()
	st := testutil.NewTestStore(t, snap)
	return st, NewRecorder(st, nil, metrics.New())
}
