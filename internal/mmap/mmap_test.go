package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.txt")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestMapping_OpenReadClose(t *testing.T) {
	content := []byte("line1\nline2\n")
	path := writeFixture(t, content)

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, len(content), m.Size())
	assert.Equal(t, content, m.Bytes())

	require.NoError(t, m.Close())
	assert.Nil(t, m.Bytes())

	// Close is idempotent.
	require.NoError(t, m.Close())
}

func TestMapping_EmptyFile(t *testing.T) {
	path := writeFixture(t, nil)

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 0, m.Size())
	assert.Empty(t, m.Bytes())
}

func TestMapping_NonexistentPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMapping_Advise(t *testing.T) {
	path := writeFixture(t, []byte("advise me"))

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Advise(AccessSequential))
	require.NoError(t, m.Advise(AccessRandom))
	require.NoError(t, m.Advise(AccessWillNeed))
	require.NoError(t, m.Advise(AccessDefault))

	require.NoError(t, m.Close())
	assert.ErrorIs(t, m.Advise(AccessSequential), ErrClosed)
}

func TestMapping_MapKeepsDataAfterFileClose(t *testing.T) {
	content := []byte("outlives the descriptor")
	path := writeFixture(t, content)

	f, err := os.Open(path)
	require.NoError(t, err)

	m, err := Map(f)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, f.Close())
	assert.Equal(t, content, m.Bytes())
}

func TestMapping_NonRegularFile(t *testing.T) {
	f, err := os.Open(t.TempDir())
	require.NoError(t, err)
	defer f.Close()

	_, err = Map(f)
	assert.ErrorIs(t, err, ErrInvalidSize)
}
