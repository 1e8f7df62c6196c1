package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, prefix string) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), prefix)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t, "app")

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, s.Set("k1", payload{Name: "lehnga", Count: 3}))

	var got payload
	ok, err := s.Get("k1", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload{Name: "lehnga", Count: 3}, got)
}

func TestGetMissingKey(t *testing.T) {
	s := openTestStore(t, "app")

	var out string
	ok, err := s.Get("missing", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetOverwrites(t *testing.T) {
	s := openTestStore(t, "app")

	require.NoError(t, s.Set("k", "first"))
	require.NoError(t, s.Set("k", "second"))

	var got string
	ok, err := s.Get("k", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t, "app")

	require.NoError(t, s.Set("k", 42))
	require.NoError(t, s.Delete("k"))

	var got int
	ok, err := s.Get("k", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting a missing key is not an error
	assert.NoError(t, s.Delete("k"))
}

func TestPrefixesAreIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.db")

	a, err := Open(path, "a")
	require.NoError(t, err)
	defer a.Close()

	b, err := Open(path, "b")
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.Set("k", "from-a"))
	require.NoError(t, b.Set("k", "from-b"))

	var got string
	ok, err := a.Get("k", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "from-a", got)

	require.NoError(t, a.Clear())

	ok, err = a.Get("k", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	// b's data survives a's Clear
	ok, err = b.Get("k", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "from-b", got)
}
