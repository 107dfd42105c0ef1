package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MemoryStore_ReadWriteDelete(t *testing.T) {
	// given
	store := NewMemoryStore()
	ctx := context.Background()

	// when: reading an absent slot
	_, err := store.Read(ctx, "cart")
	// then
	assert.ErrorIs(t, err, ErrNotFound)

	// when: writing and reading back
	require.NoError(t, store.Write(ctx, "cart", []byte(`[{"q":1}]`)))
	value, err := store.Read(ctx, "cart")
	// then
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"q":1}]`), value)

	// when: deleting
	require.NoError(t, store.Delete(ctx, "cart"))
	_, err = store.Read(ctx, "cart")
	// then
	assert.ErrorIs(t, err, ErrNotFound)

	// and: deleting an absent slot is not an error
	assert.NoError(t, store.Delete(ctx, "cart"))
}

func Test_MemoryStore_ReturnsCopies(t *testing.T) {
	// given
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, "cart", []byte("abc")))

	// when: a caller mutates the returned value
	value, err := store.Read(ctx, "cart")
	require.NoError(t, err)
	value[0] = 'z'

	// then: the stored value is unchanged
	again, err := store.Read(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
