package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-resolver/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validCommitRequest() models.CommitRequest {
	items := []models.CommitItem{
		{ID: "a", Value: []byte("v"), BaseVersion: 0},
		{ID: "b", Deleted: true, BaseVersion: 7},
	}
	return models.CommitRequest{Items: items, Length: len(items)}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestNewSyncValidator(t *testing.T) {
	require.NotNil(t, NewSyncValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewSyncValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("CommitRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCommitRequest()))
	})

	t.Run("CommitRequest pointer", func(t *testing.T) {
		req := validCommitRequest()
		require.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("CommitItem pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.CommitItem{ID: "a"}))
	})

	t.Run("UpdatesQuery value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.UpdatesQuery{Since: 0, Limit: 1}))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.CommitItem{ID: "a"}, "nope"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// CommitRequest
// ---------------------------------------------------------------------------

func TestValidate_CommitRequest(t *testing.T) {
	v := NewSyncValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.CommitRequest)
		wantErr error
	}{
		{"valid", func(*models.CommitRequest) {}, nil},
		{"empty items", func(r *models.CommitRequest) { r.Items = nil; r.Length = 0 }, ErrEmptyItems},
		{"empty id", func(r *models.CommitRequest) { r.Items[1].ID = "" }, ErrInvalidEntryID},
		{"negative base", func(r *models.CommitRequest) { r.Items[0].BaseVersion = -1 }, ErrInvalidBaseVersion},
		{"duplicate id", func(r *models.CommitRequest) { r.Items[1].ID = "a" }, ErrDuplicateEntryID},
		{"length mismatch", func(r *models.CommitRequest) { r.Length = 5 }, ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCommitRequest()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_CommitRequest_ReportsIndex(t *testing.T) {
	req := validCommitRequest()
	req.Items[1].ID = ""

	err := NewSyncValidator().Validate(context.Background(), req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 1")
}

func TestValidate_CommitRequest_FieldScoping(t *testing.T) {
	req := validCommitRequest()
	req.Length = 0

	require.NoError(t, NewSyncValidator().Validate(context.Background(), req, FieldItems))
}

// ---------------------------------------------------------------------------
// UpdatesQuery
// ---------------------------------------------------------------------------

func TestValidate_UpdatesQuery(t *testing.T) {
	v := NewSyncValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		query   models.UpdatesQuery
		wantErr error
	}{
		{"valid", models.UpdatesQuery{Since: 10, Limit: 100}, nil},
		{"zero since", models.UpdatesQuery{Since: 0, Limit: 1}, nil},
		{"negative since", models.UpdatesQuery{Since: -1, Limit: 1}, ErrInvalidSince},
		{"zero limit", models.UpdatesQuery{Since: 0, Limit: 0}, ErrInvalidLimit},
		{"negative limit", models.UpdatesQuery{Since: 0, Limit: -5}, ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.query)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
