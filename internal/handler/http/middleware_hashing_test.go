// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-resolver/internal/app"
	"github.com/MKhiriev/go-sync-resolver/internal/utils"
	"github.com/MKhiriev/go-sync-resolver/models"
)

// --- Helpers ---

func makeCommitBody(t *testing.T, items []models.CommitItem, hash string) []byte {
	t.Helper()
	body, err := json.Marshal(models.CommitRequest{Items: items, Length: len(items), Hash: hash})
	require.NoError(t, err)
	return body
}

func computeHash(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return utils.HashString(b)
}

func sampleCommitItems() []models.CommitItem {
	return []models.CommitItem{
		{ID: "a", Value: []byte("hello"), BaseVersion: 3, Mtime: time.Date(2026, 5, 1, 12, 0, 0, 123, time.UTC)},
		{ID: "b", Deleted: true, BaseVersion: 9},
		{ID: "c", Value: []byte{}, BaseVersion: 0},
	}
}

// runHashing sends body through commitHashing and reports whether next ran
// and what body it saw.
func runHashing(t *testing.T, body []byte) (*httptest.ResponseRecorder, bool, []byte) {
	t.Helper()
	var (
		called bool
		seen   []byte
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/sync/commit", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	newTestHandler().commitHashing(next).ServeHTTP(rr, req)
	return rr, called, seen
}

// --- Tests ---

func TestCommitHashing_TableTest(t *testing.T) {
	items := sampleCommitItems()
	validHash := computeHash(t, items)

	tests := []struct {
		name       string
		body       []byte
		wantNext   bool
		wantStatus int
		wantBody   string
	}{
		{name: "valid hash", body: makeCommitBody(t, items, validHash), wantNext: true, wantStatus: http.StatusOK},
		{name: "empty items with matching hash", body: makeCommitBody(t, nil, computeHash(t, []models.CommitItem(nil))), wantNext: true, wantStatus: http.StatusOK},
		{name: "wrong hash", body: makeCommitBody(t, items, strings.Repeat("0", 64)), wantStatus: http.StatusBadRequest, wantBody: app.MsgIntegrityCheckFailed},
		{name: "missing hash", body: makeCommitBody(t, items, ""), wantStatus: http.StatusBadRequest, wantBody: app.MsgIntegrityCheckFailed},
		{name: "hash of other items", body: makeCommitBody(t, items[:1], validHash), wantStatus: http.StatusBadRequest, wantBody: app.MsgIntegrityCheckFailed},
		{name: "invalid JSON", body: []byte("not json"), wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, called, _ := runHashing(t, tt.body)

			assert.Equal(t, tt.wantNext, called)
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
			}
		})
	}
}

func TestCommitHashing_BodyRestoredForNext(t *testing.T) {
	items := sampleCommitItems()
	body := makeCommitBody(t, items, computeHash(t, items))

	_, called, seen := runHashing(t, body)

	require.True(t, called)
	assert.Equal(t, body, seen)
}

func TestCommitHashing_TamperedValue(t *testing.T) {
	items := sampleCommitItems()
	hash := computeHash(t, items)
	items[0].Value = []byte("hellO")

	rr, called, _ := runHashing(t, makeCommitBody(t, items, hash))

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCommitHashing_ConcurrentRequests(t *testing.T) {
	items := sampleCommitItems()
	body := makeCommitBody(t, items, computeHash(t, items))

	var wg sync.WaitGroup
	codes := make(chan int, 20)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr, _, _ := runHashing(t, body)
			codes <- rr.Code
		}()
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
}
