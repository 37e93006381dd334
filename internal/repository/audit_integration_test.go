//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/castlemill/tms-proxy/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	require.NoError(t, db.EnsureAuditTTL(ctx, 30*24*time.Hour))

	repo := NewAuditRepository(db)

	t.Run("create entry", func(t *testing.T) {
		entry := &model.AuditEntry{
			Action:    "create_keys",
			ProjectID: "123.abc",
			RequestID: "req-1",
			Method:    "POST",
			Path:      "/api/projects/123.abc/keys",
			IP:        "127.0.0.1",
			Fields:    map[string]interface{}{"key_count": 2},
		}

		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.Timestamp.IsZero())
	})

	t.Run("find by action and project", func(t *testing.T) {
		for _, action := range []string{"upload_file", "upload_file", "create_task"} {
			require.NoError(t, repo.Create(ctx, &model.AuditEntry{
				Action:    action,
				ProjectID: "456.def",
			}))
		}

		entries, err := repo.Find(ctx, AuditQuery{Action: "upload_file", ProjectID: "456.def"})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("find honors limit and sorts newest first", func(t *testing.T) {
		base := time.Now().Add(-time.Hour)
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Create(ctx, &model.AuditEntry{
				Action:    "update_translation",
				ProjectID: "789.ghi",
				Timestamp: base.Add(time.Duration(i) * time.Minute),
			}))
		}

		entries, err := repo.Find(ctx, AuditQuery{ProjectID: "789.ghi", Limit: 2})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.True(t, entries[0].Timestamp.After(entries[1].Timestamp))
	})
}

func TestMongoDB_ConnectFailure(t *testing.T) {
	t.Parallel()

	cfg := DefaultMongoConfig()
	cfg.ConnectTimeout = 2 * time.Second
	cfg.ServerSelectionTimeout = time.Second

	_, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "nope", cfg)
	assert.Error(t, err)
}
