package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-sync-resolver/internal/conflict"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/store"
	"github.com/MKhiriev/go-sync-resolver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConflictService(t *testing.T, st store.LocalStorage, policy models.ConflictPolicy) ConflictService {
	t.Helper()
	classifier, err := NewConflictClassifier(policy)
	require.NoError(t, err)
	return NewConflictService(st, classifier, conflict.NewResolver(true, logger.Nop()), logger.Nop())
}

// ── ResolveConflicts ─────────────────────────────────────────────────────────

func TestConflictService_ResolveConflicts_Policies(t *testing.T) {
	tests := []struct {
		name        string
		policy      models.ConflictPolicy
		want        models.Resolution
		wantState   models.EntryState
		wantBase    int64
	}{
		{
			name:      "server wins leaves the update to apply",
			policy:    models.PolicyServerWins,
			want:      models.ResolutionIgnoreLocalChanges,
			wantState: models.StateServerDirty,
			wantBase:  0,
		},
		{
			name:      "local wins rebases the local value",
			policy:    models.PolicyLocalWins,
			want:      models.ResolutionOverwriteServerChanges,
			wantState: models.StateLocalDirty,
			wantBase:  4,
		},
		{
			name:      "last write wins picks the newer local edit",
			policy:    models.PolicyLastWriteWins,
			want:      models.ResolutionOverwriteServerChanges,
			wantState: models.StateLocalDirty,
			wantBase:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newMemStore(t)
			seedConflict(t, st, "e1", []byte("local"), []byte("server"), testLater, testEarlier, 4)

			report, err := newTestConflictService(t, st, tt.policy).ResolveConflicts(context.Background())
			require.NoError(t, err)

			assert.Equal(t, 1, report.Resolved[tt.want])
			assert.Equal(t, 1, report.Total())
			assert.Empty(t, report.Failed)

			e := loadEntry(t, st, "e1")
			assert.False(t, e.IsConflicting)
			assert.Equal(t, tt.wantState, e.State())
			assert.Equal(t, tt.wantBase, e.BaseVersion)
			assert.Equal(t, []byte("local"), e.LocalValue, "resolution never rewrites values")
		})
	}
}

func TestConflictService_ResolveConflicts_EqualValues(t *testing.T) {
	st := newMemStore(t)
	seedConflict(t, st, "e1", []byte("same"), []byte("same"), testLater, testEarlier, 6)

	report, err := newTestConflictService(t, st, models.PolicyLocalWins).ResolveConflicts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Resolved[models.ResolutionIgnoreConflict])
	e := loadEntry(t, st, "e1")
	assert.Equal(t, models.StateClean, e.State())
	assert.Equal(t, int64(6), e.BaseVersion)
}

func TestConflictService_ResolveConflicts_OnlyConflicting(t *testing.T) {
	st := newMemStore(t)
	seedConflict(t, st, "c1", []byte("a"), []byte("b"), testLater, testEarlier, 2)
	seedConflict(t, st, "c2", []byte("x"), []byte("y"), testLater, testEarlier, 3)
	seed(t, st, "local-only", func(m *store.MutableEntry) { m.PutLocalValue([]byte("l"), testLater) })
	seed(t, st, "server-only", func(m *store.MutableEntry) {
		m.PutServerUpdate(models.ServerUpdate{ID: "server-only", Value: []byte("s"), Version: 5})
	})

	report, err := newTestConflictService(t, st, models.PolicyServerWins).ResolveConflicts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total())
	assert.Equal(t, models.StateLocalDirty, loadEntry(t, st, "local-only").State())
	assert.Equal(t, models.StateServerDirty, loadEntry(t, st, "server-only").State())
}

func TestConflictService_ResolveConflicts_ClassifierFailure(t *testing.T) {
	st := newMemStore(t)
	seedConflict(t, st, "bad", []byte("a"), []byte("b"), testLater, testEarlier, 2)
	seedConflict(t, st, "good", []byte("x"), []byte("y"), testLater, testEarlier, 3)

	classifier := ClassifierFunc(func(_ context.Context, e models.Entry) (models.Resolution, error) {
		if e.ID == "bad" {
			return models.ResolutionNone, assert.AnError
		}
		return models.ResolutionIgnoreLocalChanges, nil
	})
	svc := NewConflictService(st, classifier, conflict.NewResolver(false, logger.Nop()), logger.Nop())

	report, err := svc.ResolveConflicts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"bad"}, report.Failed)
	assert.Equal(t, 1, report.Resolved[models.ResolutionIgnoreLocalChanges])

	bad := loadEntry(t, st, "bad")
	assert.True(t, bad.IsConflicting, "failed entry stays conflicting")
	assert.True(t, bad.IsUnsynced)
	assert.True(t, bad.IsUnappliedUpdate)
	assert.False(t, loadEntry(t, st, "good").IsConflicting)
}

func TestConflictService_ResolveConflicts_UnknownResolution(t *testing.T) {
	st := newMemStore(t)
	seedConflict(t, st, "e1", []byte("a"), []byte("b"), testLater, testEarlier, 2)

	classifier := ClassifierFunc(func(context.Context, models.Entry) (models.Resolution, error) {
		return models.Resolution(42), nil
	})
	svc := NewConflictService(st, classifier, conflict.NewResolver(false, logger.Nop()), logger.Nop())

	report, err := svc.ResolveConflicts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"e1"}, report.Failed)
	assert.True(t, loadEntry(t, st, "e1").IsConflicting)
}

func TestConflictService_ResolveConflicts_Empty(t *testing.T) {
	st := newMemStore(t)

	report, err := newTestConflictService(t, st, models.PolicyServerWins).ResolveConflicts(context.Background())
	require.NoError(t, err)

	assert.Zero(t, report.Total())
	assert.Zero(t, report.Skipped)
	assert.Empty(t, report.Failed)
}

func TestConflictService_ResolveConflicts_CancelledContext(t *testing.T) {
	st := newMemStore(t)
	seedConflict(t, st, "e1", []byte("a"), []byte("b"), testLater, testEarlier, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestConflictService(t, st, models.PolicyServerWins).ResolveConflicts(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestConflictService_ResolveConflicts_Idempotent(t *testing.T) {
	st := newMemStore(t)
	seedConflict(t, st, "e1", []byte("a"), []byte("b"), testLater, testEarlier, 2)
	svc := newTestConflictService(t, st, models.PolicyLocalWins)

	_, err := svc.ResolveConflicts(context.Background())
	require.NoError(t, err)
	first := loadEntry(t, st, "e1")

	report, err := svc.ResolveConflicts(context.Background())
	require.NoError(t, err)

	assert.Zero(t, report.Total())
	assert.Equal(t, first, loadEntry(t, st, "e1"))
}
