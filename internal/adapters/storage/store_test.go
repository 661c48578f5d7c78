package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/physiodesk/backend/internal/adapters/storage"
	"github.com/zatekoja/physiodesk/backend/internal/domain/providers"
	redisclient "github.com/zatekoja/physiodesk/backend/internal/infrastructure/clients/redis"
	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// exerciseStore runs the behaviour every slot store must share.
func exerciseStore(t *testing.T, store providers.KeyValueStore) {
	t.Helper()
	ctx := context.Background()
	const key = "physio_patients"

	t.Run("absent key is not found", func(t *testing.T) {
		_, err := store.Get(ctx, key)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))

		ok, err := store.Exists(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get returns the value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, []byte(`[{"id":"1"}]`)))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"1"}]`, string(got))

		ok, err := store.Exists(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, []byte(`[]`)))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(got))
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "physio_payments", []byte(`[{"id":"p"}]`)))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(got))
	})

	t.Run("delete removes and tolerates absent keys", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, key))

		_, err := store.Get(ctx, key)
		assert.True(t, apperrors.IsNotFound(err))

		require.NoError(t, store.Delete(ctx, key))
	})
}

func TestMemoryAdapter(t *testing.T) {
	exerciseStore(t, storage.NewMemoryAdapter())
}

func TestMemoryAdapter_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryAdapter()

	value := []byte(`[1]`)
	require.NoError(t, store.Set(ctx, "k", value))
	value[1] = '2'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(got))

	got[1] = '3'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(again))
}

func TestFileAdapter(t *testing.T) {
	store, err := storage.NewFileAdapter(t.TempDir())
	require.NoError(t, err)

	exerciseStore(t, store)
}

func TestFileAdapter_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")

	first, err := storage.NewFileAdapter(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "physio_settings", []byte(`{"currency":"TRY"}`)))

	second, err := storage.NewFileAdapter(dir)
	require.NoError(t, err)
	got, err := second.Get(ctx, "physio_settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"currency":"TRY"}`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "physio_settings.json", entries[0].Name())
}

func TestFileAdapter_EscapesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := storage.NewFileAdapter(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "../escape/slot", []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got, err := store.Get(ctx, "../escape/slot")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestRedisAdapter(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redisclient.Connect(context.Background(), &redis.Options{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	exerciseStore(t, storage.NewRedisAdapter(client))
}

func TestRedisAdapter_NoExpiry(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redisclient.Connect(context.Background(), &redis.Options{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := storage.NewRedisAdapter(client)
	require.NoError(t, store.Set(context.Background(), "physio_requests", []byte(`[]`)))

	assert.Zero(t, mr.TTL("physio_requests"))
}
