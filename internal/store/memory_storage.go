// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/MKhiriev/go-sync-resolver/models"
)

// memoryStorage is a map-backed [LocalStorage]. Write transactions hold the
// store's write lock for their whole duration, which is what makes handles
// exclusive. When a file path is given, the committed state is persisted to it
// as JSON after every successful write transaction.
type memoryStorage struct {
	path     string
	inMemory bool

	mu            sync.RWMutex
	entries       map[string]models.Entry
	highWaterMark int64
}

type memoryPersistedState struct {
	Entries       map[string]models.Entry `json:"entries"`
	HighWaterMark int64                   `json:"high_water_mark"`
}

// NewMemoryStorage returns a map-backed [LocalStorage]. An empty path,
// ":memory:" or "memory" keeps everything in process memory; any other value
// is used as a JSON snapshot file that is loaded on start and rewritten on
// every commit.
func NewMemoryStorage(path string) (LocalStorage, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &memoryStorage{
		path:     path,
		inMemory: path == ":memory:" || path == "memory",
		entries:  make(map[string]models.Entry),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// View implements [LocalStorage].
func (s *memoryStorage) View(ctx context.Context, fn func(tx ReadTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tx := &memoryWriteTx{entries: s.entries, highWaterMark: s.highWaterMark}
	defer tx.close()

	return fn(tx)
}

// Update implements [LocalStorage].
func (s *memoryStorage) Update(ctx context.Context, fn func(tx WriteTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryWriteTx{entries: s.entries, highWaterMark: s.highWaterMark, handles: make(handleSet)}
	defer tx.close()

	if err := fn(tx); err != nil {
		return err
	}

	dirty := tx.handles.dirty()
	if len(dirty) == 0 && !tx.mark.set {
		return nil
	}

	previousMark := s.highWaterMark
	s.highWaterMark = tx.mark.over(s.highWaterMark)

	previous := make(map[string]models.Entry, len(dirty))
	for _, m := range dirty {
		if old, ok := s.entries[m.ID()]; ok {
			previous[m.ID()] = old
		}
		s.entries[m.ID()] = m.Entry()
	}

	if err := s.persist(); err != nil {
		s.highWaterMark = previousMark
		for _, m := range dirty {
			if old, ok := previous[m.ID()]; ok {
				s.entries[m.ID()] = old
			} else {
				delete(s.entries, m.ID())
			}
		}
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Close implements [LocalStorage].
func (s *memoryStorage) Close() error {
	return nil
}

func (s *memoryStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st memoryPersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}
	if st.Entries != nil {
		s.entries = st.Entries
	}
	s.highWaterMark = st.HighWaterMark

	return nil
}

func (s *memoryStorage) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(memoryPersistedState{Entries: s.entries, HighWaterMark: s.highWaterMark}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}

	return nil
}

// memoryWriteTx serves both transaction kinds; a nil handle set means the
// transaction is read-only.
type memoryWriteTx struct {
	entries       map[string]models.Entry
	highWaterMark int64
	handles       handleSet
	mark          pendingMark
	closed        bool
}

func (tx *memoryWriteTx) close() { tx.closed = true }

func (tx *memoryWriteTx) GetEntry(id string) (models.Entry, error) {
	if tx.closed {
		return models.Entry{}, ErrTxClosed
	}
	if m, ok := tx.handles[id]; ok {
		return m.Entry(), nil
	}
	e, ok := tx.entries[id]
	if !ok {
		return models.Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return e.Clone(), nil
}

func (tx *memoryWriteTx) ConflictingIDs() ([]string, error) {
	if tx.closed {
		return nil, ErrTxClosed
	}
	return tx.filter(isConflicting), nil
}

func (tx *memoryWriteTx) UnsyncedIDs() ([]string, error) {
	if tx.closed {
		return nil, ErrTxClosed
	}
	return tx.filter(isPendingCommit), nil
}

func (tx *memoryWriteTx) UnappliedIDs() ([]string, error) {
	if tx.closed {
		return nil, ErrTxClosed
	}
	return tx.filter(isPendingApply), nil
}

func (tx *memoryWriteTx) HighWaterMark() (int64, error) {
	if tx.closed {
		return 0, ErrTxClosed
	}
	return tx.mark.over(tx.highWaterMark), nil
}

func (tx *memoryWriteTx) AdvanceHighWaterMark(version int64) error {
	if tx.closed {
		return ErrTxClosed
	}
	tx.mark.advance(version)
	return nil
}

func (tx *memoryWriteTx) filter(pred func(models.Entry) bool) []string {
	base := make([]string, 0)
	for _, id := range slices.Sorted(maps.Keys(tx.entries)) {
		if pred(tx.entries[id]) {
			base = append(base, id)
		}
	}
	return tx.handles.overlay(base, pred)
}

func (tx *memoryWriteTx) GetMutable(id string) (*MutableEntry, error) {
	if tx.closed {
		return nil, ErrTxClosed
	}
	if m, ok := tx.handles[id]; ok {
		return m, nil
	}
	e, ok := tx.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	m := newMutableEntry(e, false)
	tx.handles[id] = m
	return m, nil
}

func (tx *memoryWriteTx) CreateMutable(id string) (*MutableEntry, error) {
	if tx.closed {
		return nil, ErrTxClosed
	}
	if _, ok := tx.handles[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryExists, id)
	}
	if _, ok := tx.entries[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryExists, id)
	}
	m := newMutableEntry(models.Entry{ID: id}, true)
	tx.handles[id] = m
	return m, nil
}

func (tx *memoryWriteTx) GetOrCreateMutable(id string) (*MutableEntry, error) {
	m, err := tx.GetMutable(id)
	if errors.Is(err, ErrEntryNotFound) {
		return tx.CreateMutable(id)
	}
	return m, err
}
