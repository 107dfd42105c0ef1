package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FileStore_ReadWriteDelete(t *testing.T) {
	// given
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	// when: reading an absent slot
	_, err = store.Read(ctx, "cart")
	// then
	assert.ErrorIs(t, err, ErrNotFound)

	// when: writing, overwriting and reading back
	require.NoError(t, store.Write(ctx, "cart", []byte("first")))
	require.NoError(t, store.Write(ctx, "cart", []byte("second")))
	value, err := store.Read(ctx, "cart")
	// then
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), value)

	// when: deleting twice
	require.NoError(t, store.Delete(ctx, "cart"))
	require.NoError(t, store.Delete(ctx, "cart"))
	_, err = store.Read(ctx, "cart")
	// then
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_FileStore_CreatesDirectory(t *testing.T) {
	// given: a directory that does not exist yet
	dir := filepath.Join(t.TempDir(), "nested", "data")

	// when
	store, err := NewFileStore(dir)

	// then
	require.NoError(t, err)
	require.NoError(t, store.Write(context.Background(), "cart", []byte("x")))
	_, err = os.Stat(filepath.Join(dir, "cart.json"))
	assert.NoError(t, err)
}

func Test_FileStore_LeavesNoTempFiles(t *testing.T) {
	// given
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	// when
	require.NoError(t, store.Write(context.Background(), "cart", []byte("x")))

	// then: only the slot file remains
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cart.json", entries[0].Name())
}
