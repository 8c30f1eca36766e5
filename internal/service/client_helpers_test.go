package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-sync-resolver/internal/store"
	"github.com/MKhiriev/go-sync-resolver/models"
	"github.com/stretchr/testify/require"
)

var (
	testEarlier = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	testLater   = testEarlier.Add(time.Hour)
)

func newMemStore(t *testing.T) store.LocalStorage {
	t.Helper()
	st, err := store.NewMemoryStorage("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// seed runs fn against a fresh handle for id in its own write transaction.
func seed(t *testing.T, st store.LocalStorage, id string, fn func(m *store.MutableEntry)) {
	t.Helper()
	err := st.Update(context.Background(), func(tx store.WriteTx) error {
		m, err := tx.GetOrCreateMutable(id)
		if err != nil {
			return err
		}
		fn(m)
		return nil
	})
	require.NoError(t, err)
}

// seedConflict stores an entry whose server side moved to serverVersion while
// a local edit was pending.
func seedConflict(t *testing.T, st store.LocalStorage, id string, local, server []byte, localMtime, serverMtime time.Time, serverVersion int64) {
	t.Helper()
	seed(t, st, id, func(m *store.MutableEntry) {
		m.PutServerUpdate(models.ServerUpdate{ID: id, Value: server, Version: serverVersion, Mtime: serverMtime})
		m.PutLocalValue(local, localMtime)
	})
}

func loadEntry(t *testing.T, st store.LocalStorage, id string) models.Entry {
	t.Helper()
	var e models.Entry
	err := st.View(context.Background(), func(tx store.ReadTx) error {
		var err error
		e, err = tx.GetEntry(id)
		return err
	})
	require.NoError(t, err)
	return e
}
