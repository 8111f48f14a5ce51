package token

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Lifecycle(t *testing.T) {
	s := NewMemory()

	_, ok := s.Get()
	assert.False(t, ok)

	require.NoError(t, s.Set("t1"))
	v, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "t1", v)

	require.NoError(t, s.Set("t2"))
	v, _ = s.Get()
	assert.Equal(t, "t2", v, "Set must overwrite the prior value")

	require.NoError(t, s.Clear())
	_, ok = s.Get()
	assert.False(t, ok)

	require.NoError(t, s.Clear(), "Clear must be idempotent")
}

func TestFile_Lifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFile(path)

	_, ok := s.Get()
	assert.False(t, ok)

	require.NoError(t, s.Set("t1"))
	v, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "t1", v)

	require.NoError(t, s.Clear())
	_, ok = s.Get()
	assert.False(t, ok)

	require.NoError(t, s.Clear(), "clearing a missing file is not an error")
}

func TestFile_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, NewFile(path).Set("t1"))

	v, ok := NewFile(path).Get()
	assert.True(t, ok)
	assert.Equal(t, "t1", v)
}

func TestFile_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("t1\n"), 0o600))

	v, ok := NewFile(path).Get()
	assert.True(t, ok)
	assert.Equal(t, "t1", v)
}

func TestFile_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token")
	s := NewFile(path)
	require.NoError(t, s.Set("t1"))

	v, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "t1", v)
}
