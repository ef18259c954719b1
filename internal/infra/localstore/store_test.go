package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(t.TempDir())
	require.NoError(t, err)

	return store
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	saved := doc{Name: "starfund", Count: 3}
	require.NoError(t, store.Save("session", saved))

	var loaded doc
	found, err := store.Load("session", &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, saved, loaded)
}

func TestStore_LoadAbsent(t *testing.T) {
	store := newTestStore(t)

	var loaded doc
	found, err := store.Load("missing", &loaded)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, loaded)
}

func TestStore_CorruptDocumentClearedAndAbsent(t *testing.T) {
	store := newTestStore(t)

	path := filepath.Join(store.Dir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	var loaded doc
	found, err := store.Load("session", &loaded)
	require.NoError(t, err)
	assert.False(t, found)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "corrupt document should be removed")
}

func TestStore_DeleteAbsentIsNoError(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Delete("missing"))
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("slot", doc{Name: "a", Count: 1}))
	require.NoError(t, store.Save("slot", doc{Name: "b", Count: 2}))

	var loaded doc
	found, err := store.Load("slot", &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, doc{Name: "b", Count: 2}, loaded)
}
