package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestGet_MissingKey(t *testing.T) {
	repo := newTestRepository(t)

	value, ok, err := repo.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSet_Upserts(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "pollingInterval", "5"))
	require.NoError(t, repo.Set(ctx, "pollingInterval", "10"))

	value, ok, err := repo.Get(ctx, "pollingInterval")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "10", value)
}

func TestSetMany_All(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetMany(ctx, map[string]string{
		"activeTab": "builds",
		"darkMode":  "false",
		"username":  "octo",
	}))
	require.NoError(t, repo.SetMany(ctx, nil))

	values, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"activeTab": "builds",
		"darkMode":  "false",
		"username":  "octo",
	}, values)
}

func TestNewSQLiteRepositoryForPath_Reopen(t *testing.T) {
	home := t.TempDir()
	ctx := context.Background()

	repo, err := NewSQLiteRepositoryForPath(home)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, "expoProjectSlug", "acme/app"))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepositoryForPath(home)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "expoProjectSlug")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "acme/app", value)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 2 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 3)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		err := withRetry(func() error {
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		}, 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 2 retries")
	})
}
