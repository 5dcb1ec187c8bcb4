package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *KVStore {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "nested", "causette.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewKVStore(db)
}

func TestKVStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	value, ok, err := s.Get(context.Background(), "chatHistory")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestKVStore_SetOverwriteDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "chatMode", "research"))
	value, ok, err := s.Get(ctx, "chatMode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "research", value)

	require.NoError(t, s.Set(ctx, "chatMode", "normal"))
	value, _, err = s.Get(ctx, "chatMode")
	require.NoError(t, err)
	assert.Equal(t, "normal", value)

	require.NoError(t, s.Delete(ctx, "chatMode"))
	_, ok, err = s.Get(ctx, "chatMode")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting a missing key is not an error
	require.NoError(t, s.Delete(ctx, "chatMode"))
}

func TestKVStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "causette.db")

	db, err := NewDB(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewKVStore(db).Set(ctx, "chatHistory", `[{"text":"hi","sender":"user","image":null,"url":null}]`))
	require.NoError(t, db.Close())

	db, err = NewDB(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	value, ok, err := NewKVStore(db).Get(ctx, "chatHistory")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, value, `"text":"hi"`)
}
