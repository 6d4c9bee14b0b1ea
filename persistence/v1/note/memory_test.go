package note

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryInsertAndList(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	id, err := store.Insert(ctx, Fields{"title": "Groceries", "desc": "Milk, eggs", "important": true})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "Groceries", docs[0]["title"])
	assert.Equal(t, "Milk, eggs", docs[0]["desc"])
	assert.Equal(t, true, docs[0]["important"])
	assert.Equal(t, id, docs[0]["_id"])
}

func TestMemoryIdsAreDistinct(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		id, err := store.Insert(ctx, Fields{"title": "note"})
		require.NoError(t, err)
		assert.False(t, seen[id], "id %s generated twice", id)
		seen[id] = true
	}

	docs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestMemoryListCopiesDocuments(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, err := store.Insert(ctx, Fields{"title": "original"})
	require.NoError(t, err)

	docs, err := store.List(ctx)
	require.NoError(t, err)
	docs[0]["title"] = "mutated"

	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", again[0]["title"])
}

func TestMemoryAcceptsArbitraryFields(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, err := store.Insert(ctx, Fields{"color": "blue", "weight": "12"})
	require.NoError(t, err)

	docs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "blue", docs[0]["color"])
	assert.Equal(t, "12", docs[0]["weight"])
}
