package state

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/devreg/internal/testutil"
	"github.com/leapstack-labs/devreg/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(testutil.NewTestLogger(t))
	require.NoError(t, store.Open(":memory:"), "failed to open store")
	require.NoError(t, store.Migrate(), "failed to migrate")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_OpenClose(t *testing.T) {
	store := NewSQLiteStore(nil)
	require.NoError(t, store.Open(filepath.Join(t.TempDir(), "state.db")))
	require.NoError(t, store.Migrate())

	version, err := store.GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	require.NoError(t, store.Close())
}

func TestSQLiteStore_OpenSpecialCharacters(t *testing.T) {
	for _, name := range []string{"state?mode=ro.db", "state#1.db", "100% state.db"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, name)

			store := NewSQLiteStore(testutil.NewTestLogger(t))
			require.NoError(t, store.Open(path))
			t.Cleanup(func() { _ = store.Close() })
			require.NoError(t, store.Migrate())

			_, err := store.SaveSnapshot(context.Background(), "v1", registry.Landing())
			require.NoError(t, err)

			assert.FileExists(t, path, "database must be created under the exact file name")
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			for _, e := range entries {
				assert.True(t, strings.HasPrefix(e.Name(), name), "unexpected file %q", e.Name())
			}
		})
	}
}

func TestSQLiteStore_NotOpened(t *testing.T) {
	store := NewSQLiteStore(nil)
	ctx := context.Background()

	assert.ErrorIs(t, store.Migrate(), errNotOpened)
	_, err := store.SaveSnapshot(ctx, "", registry.Landing())
	assert.ErrorIs(t, err, errNotOpened)
	_, err = store.LatestSnapshot(ctx)
	assert.ErrorIs(t, err, errNotOpened)
	_, err = store.ListSnapshots(ctx)
	assert.ErrorIs(t, err, errNotOpened)
	_, err = store.GetMigrationVersion()
	assert.ErrorIs(t, err, errNotOpened)
	assert.NoError(t, store.Close())
}

func TestSQLiteStore_SnapshotLifecycle(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	latest, err := store.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest, "no snapshot yet")

	reg := registry.Landing()
	snap, err := store.SaveSnapshot(ctx, "v1", reg)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, "v1", snap.Label)
	assert.Equal(t, 5, snap.Groups)
	assert.Equal(t, reg.Count(), snap.Entries)

	got, err := store.GetSnapshot(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, snap.Groups, got.Groups)
	assert.Equal(t, snap.Entries, got.Entries)
	assert.WithinDuration(t, snap.CreatedAt, got.CreatedAt, 0)

	loaded, err := store.LoadRegistry(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, reg.Groups(), loaded.Groups())
	assert.Empty(t, registry.Diff(reg, loaded), "stored registry should round-trip")

	e, ok := loaded.Describe("hero-title")
	require.True(t, ok)
	assert.Equal(t, "Hero Title", e.Name)

	second, err := store.SaveSnapshot(ctx, "v2", reg)
	require.NoError(t, err)

	latest, err = store.LatestSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)

	all, err := store.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")

	require.NoError(t, store.DeleteSnapshot(ctx, snap.ID))
	_, err = store.GetSnapshot(ctx, snap.ID)
	assert.True(t, errors.Is(err, ErrSnapshotNotFound))

	err = store.DeleteSnapshot(ctx, snap.ID)
	assert.True(t, errors.Is(err, ErrSnapshotNotFound))
}

func TestSQLiteStore_LoadRegistryUnknown(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.LoadRegistry(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrSnapshotNotFound))
}

func TestSQLiteStore_EmptyRegistry(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	empty, err := registry.New(nil, nil)
	require.NoError(t, err)

	snap, err := store.SaveSnapshot(ctx, "", empty)
	require.NoError(t, err)
	assert.Zero(t, snap.Entries)

	loaded, err := store.LoadRegistry(ctx, snap.ID)
	require.NoError(t, err)
	assert.Zero(t, loaded.Count())
}
