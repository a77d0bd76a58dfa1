package kvstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/iban-book/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_GetMissing(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), nil)
	require.NoError(t, err)

	v, found, err := s.Get(context.Background(), "banks")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, v)
}

func TestFileStore_SetThenGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	logger := logging.NewMockLogger()
	s, err := NewFileStore(dir, logger)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "categories", `["tümü","personal"]`))
	require.NoError(t, s.Set(ctx, "categories", `["tümü"]`))

	v, found, err := s.Get(ctx, "categories")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["tümü"]`, v)

	raw, err := os.ReadFile(filepath.Join(dir, "categories.json"))
	require.NoError(t, err)
	assert.Equal(t, `["tümü"]`, string(raw))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
	assert.True(t, logger.HasEntry("DEBUG", "Saved key"))
}

func TestFileStore_InvalidKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", "../escape", "Banks", "a/b"} {
		_, _, err := s.Get(ctx, key)
		assert.Error(t, err, key)
		assert.Error(t, s.Set(ctx, key, "x"), key)
	}
}

func TestFileStore_CancelledContext(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Set(ctx, "banks", "{}"), context.Canceled)
	_, _, err = s.Get(ctx, "banks")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileStore_ReadError(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be makes ReadFile fail
	require.NoError(t, os.Mkdir(filepath.Join(dir, "banks.json"), 0750))
	s, err := NewFileStore(dir, nil)
	require.NoError(t, err)

	_, _, err = s.Get(context.Background(), "banks")
	assert.Error(t, err)
}

func TestNewFileStore_DefaultDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := NewFileStore("", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "iban-book"), s.Dir)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(map[string]string{"banks": "{}"})

	v, found, err := m.Get(ctx, "banks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "{}", v)

	require.NoError(t, m.Set(ctx, "categories", "[]"))
	assert.Equal(t, 1, m.Calls("categories"))

	m.SetErr = errors.New("quota exceeded")
	assert.EqualError(t, m.Set(ctx, "categories", "[1]"), "quota exceeded")
	assert.Equal(t, 2, m.Calls("categories"))
	stored, _ := m.Value("categories")
	assert.Equal(t, "[]", stored)

	m.GetErr = errors.New("unavailable")
	_, _, err = m.Get(ctx, "banks")
	assert.EqualError(t, err, "unavailable")
}

var _ Store = (*FileStore)(nil)
var _ Store = (*MemoryStore)(nil)
