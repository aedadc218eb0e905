package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"smarthub/internal/database"
	"smarthub/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect("file::memory:?cache=shared&_pragma=busy_timeout(5000)")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		db.Exec("DELETE FROM client_state")
	})
	return db
}

func TestClientStateRepository_SetGetDelete(t *testing.T) {
	repo := NewClientStateRepository(newTestDB(t))
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "c1", domain.StateKeySession)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "c1", domain.StateKeySession, `{"id":1}`))
	require.NoError(t, repo.Set(ctx, "c1", domain.StateKeySession, `{"id":2}`))

	v, ok, err := repo.Get(ctx, "c1", domain.StateKeySession)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":2}`, v)

	_, ok, err = repo.Get(ctx, "c2", domain.StateKeySession)
	require.NoError(t, err)
	assert.False(t, ok, "namespaces are per client")

	require.NoError(t, repo.Delete(ctx, "c1", domain.StateKeySession))
	_, ok, err = repo.Get(ctx, "c1", domain.StateKeySession)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClientStateRepository_DeleteOlderThan(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientStateRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "old", domain.StateKeyPendingBooking, "{}"))
	require.NoError(t, repo.Set(ctx, "fresh", domain.StateKeyPendingBooking, "{}"))
	require.NoError(t, db.Model(&domain.ClientState{}).
		Where("client_id = ?", "old").
		UpdateColumn("updated_at", time.Now().Add(-48*time.Hour)).Error)

	deleted, err := repo.DeleteOlderThan(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, ok, err := repo.Get(ctx, "fresh", domain.StateKeyPendingBooking)
	require.NoError(t, err)
	assert.True(t, ok)
}
