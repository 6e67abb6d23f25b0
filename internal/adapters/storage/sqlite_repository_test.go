package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tabstash/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepositoryForPath(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepository_GetMissingKey(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), domain.ScopeLocal, domain.PendingTransferKey)

	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, domain.ScopeLocal, domain.DialogWindowStateKey, []byte(`{"width":1}`)))
	require.NoError(t, repo.Set(ctx, domain.ScopeLocal, domain.DialogWindowStateKey, []byte(`{"width":2}`)))

	value, err := repo.Get(ctx, domain.ScopeLocal, domain.DialogWindowStateKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":2}`, string(value))
}

func TestSQLiteRepository_ScopesAreIndependent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, domain.ScopeSync, domain.ThemeKey, []byte(`"dark"`)))

	_, err := repo.Get(ctx, domain.ScopeLocal, domain.ThemeKey)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	value, err := repo.Get(ctx, domain.ScopeSync, domain.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, `"dark"`, string(value))
}

func TestSQLiteRepository_Remove(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, domain.ScopeLocal, domain.PendingTransferKey, []byte(`{}`)))

	require.NoError(t, repo.Remove(ctx, domain.ScopeLocal, domain.PendingTransferKey))
	require.NoError(t, repo.Remove(ctx, domain.ScopeLocal, domain.PendingTransferKey))

	_, err := repo.Get(ctx, domain.ScopeLocal, domain.PendingTransferKey)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestSQLiteRepository_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewSQLiteRepositoryForPath(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, domain.ScopeLocal, domain.PendingTransferKey, []byte(`{"ticket":"a"}`)))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepositoryForPath(dir)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, domain.ScopeLocal, domain.PendingTransferKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ticket":"a"}`, string(value))
}
