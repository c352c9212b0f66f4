package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStorage runs the behaviour every backend must share.
func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	_, err := s.Read(ctx, "contacts")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Write(ctx, "contacts", []byte(`[{"id":1}]`)))
	got, err := s.Read(ctx, "contacts")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(got))

	require.NoError(t, s.Write(ctx, "contacts", []byte(`[]`)))
	got, err = s.Read(ctx, "contacts")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	_, err = s.Read(ctx, "other")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx, "contacts"))
	_, err = s.Read(ctx, "contacts")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx, "contacts"), "deleting a missing slot is not an error")
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())
}

func TestMemoryStorage_CopiesData(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	data := []byte("abc")
	require.NoError(t, s.Write(ctx, "k", data))
	data[0] = 'x'

	got, err := s.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestLocalStorage(t *testing.T) {
	exerciseStorage(t, NewLocalStorage(filepath.Join(t.TempDir(), "data")))
}

func TestLocalStorage_WritesNamedFile(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	require.NoError(t, s.Write(context.Background(), "contacts", []byte("[]")))

	data, err := os.ReadFile(filepath.Join(dir, "contacts.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestLocalStorage_RejectsPathKeys(t *testing.T) {
	s := NewLocalStorage(t.TempDir())
	ctx := context.Background()
	for _, key := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, s.Write(ctx, key, nil), "key %q", key)
		_, err := s.Read(ctx, key)
		assert.Error(t, err, "key %q", key)
	}
}

func TestSQLiteStorage(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "contacts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStorage(t, s)
}

func TestSQLiteStorage_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, "contacts", []byte(`[1]`)))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Read(ctx, "contacts")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(got))
}
