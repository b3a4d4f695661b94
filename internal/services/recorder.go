package services

import (
	"context"
	"sync"

	"budgetly/internal/aggregate"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
	"budgetly/internal/metrics"
	"budgetly/internal/models"
	"budgetly/internal/storage"
	"budgetly/internal/store"
)

// Recorder runs after every mutation: it counts it, refreshes the gauges and
// writes the new snapshot to storage when persistence is enabled. Both the
// persister and the metrics are optional.
type Recorder struct {
	// mu keeps snapshot-then-save atomic so that an older snapshot can never
	// overwrite a newer one in storage.
	mu        sync.Mutex
	store     *store.Store
	persister storage.Persister
	metrics   *metrics.Metrics
}

// NewRecorder creates a Recorder. persister and m may be nil.
func NewRecorder(st *store.Store, persister storage.Persister, m *metrics.Metrics) *Recorder {
	return &Recorder{store: st, persister: persister, metrics: m}
}

// Commit records a mutation of entity and persists the resulting snapshot.
// The in-memory change stays applied when persisting fails.
func (r *Recorder) Commit(ctx context.Context, entity, op string) error {
	if r.metrics != nil {
		r.metrics.IncrMutation(entity, op)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	snap := r.Refresh()

	if r.persister == nil || op == metrics.OpNoop {
		return nil
	}
	if err := r.persister.Save(ctx, snap); err != nil {
		logger.Named("recorder").Errorw("failed to persist snapshot", "entity", entity, "op", op, "error", err)
		if r.metrics != nil {
			r.metrics.IncrPersistError()
		}
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// Refresh updates the record and budget status gauges from the current
// snapshot and returns that snapshot.
func (r *Recorder) Refresh() models.Snapshot {
	snap := r.store.Snapshot()
	if r.metrics != nil {
		r.metrics.ObserveSnapshot(snap)
		r.metrics.ObserveStatuses(aggregate.BudgetOverview(snap.Budgets, snap.Expenses, r.store.Now()).Budgets)
	}
	return snap
}
