package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flockhq/flock/pkg/prefs/file"
)

type viewPrefs struct {
	Columns []string `json:"columns"`
	Compact bool     `json:"compact"`
}

func TestStore_SetAndGet(t *testing.T) {
	store := file.NewStore(t.TempDir(), nil)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "roster.view", viewPrefs{Columns: []string{"name", "status"}, Compact: true}))

	var got viewPrefs

	require.True(t, store.Get(ctx, "roster.view", &got))
	assert.Equal(t, []string{"name", "status"}, got.Columns)
	assert.True(t, got.Compact)
}

func TestStore_GetMissingKey(t *testing.T) {
	store := file.NewStore(t.TempDir(), nil)

	var got viewPrefs

	assert.False(t, store.Get(context.Background(), "never.set", &got))
}

func TestStore_CorruptValueReadsAsAbsent(t *testing.T) {
	root := t.TempDir()
	store := file.NewStore(root, nil)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "roster.view", viewPrefs{Compact: true}))
	require.NoError(t, os.WriteFile(filepath.Join(root, "roster.view.json"), []byte("{not json"), 0o644))

	var got viewPrefs

	assert.False(t, store.Get(ctx, "roster.view", &got))
}

func TestStore_Delete(t *testing.T) {
	store := file.NewStore(t.TempDir(), nil)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "theme", "dark"))
	require.NoError(t, store.Delete(ctx, "theme"))

	var got string

	assert.False(t, store.Get(ctx, "theme", &got))

	// Deleting again is not an error.
	assert.NoError(t, store.Delete(ctx, "theme"))
}

func TestStore_StripsFileScheme(t *testing.T) {
	root := t.TempDir()
	store := file.NewStore("file://"+root, nil)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "theme", "light"))

	_, err := os.Stat(filepath.Join(root, "theme.json"))
	require.NoError(t, err)
}

func TestStore_OverwriteReplacesValue(t *testing.T) {
	store := file.NewStore(t.TempDir(), nil)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "theme", "dark"))
	require.NoError(t, store.Set(ctx, "theme", "light"))

	var got string

	require.True(t, store.Get(ctx, "theme", &got))
	assert.Equal(t, "light", got)
}
