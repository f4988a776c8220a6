package credstore

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFileStore_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.yaml")
	store, err := NewFileStore(path, "authToken")
	require.NoError(t, err)
	ctx := context.Background()

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Save(ctx, "tok-123"))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", got)

	if runtime.GOOS != "windows" {
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	require.NoError(t, store.Clear(ctx))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "empty credential file should be removed")

	require.NoError(t, store.Clear(ctx))
}

func TestFileStore_PreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	require.NoError(t, os.WriteFile(path, []byte("other: keep-me\n"), 0o600))

	store, err := NewFileStore(path, "authToken")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok"))
	require.NoError(t, store.Clear(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries map[string]string
	require.NoError(t, yaml.Unmarshal(data, &entries))
	assert.Equal(t, map[string]string{"other": "keep-me"}, entries)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))

	store, err := NewFileStore(path, "authToken")
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.Error(t, err)
}

func TestFileStore_Validation(t *testing.T) {
	_, err := NewFileStore("", "k")
	assert.Error(t, err)
	_, err = NewFileStore("/tmp/x.yaml", "")
	assert.Error(t, err)

	store, err := NewFileStore(filepath.Join(t.TempDir(), "c.yaml"), "k")
	require.NoError(t, err)
	assert.Error(t, store.Save(context.Background(), ""))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok"))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", got)

	require.NoError(t, store.Clear(ctx))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Error(t, store.Save(ctx, ""))
}
