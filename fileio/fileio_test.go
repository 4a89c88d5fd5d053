package fileio_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/textaccel/fileio"
)

func writeFixture(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestReadFile_KnownContent(t *testing.T) {
	content := []byte("line1\nline2\n")
	path := writeFixture(t, "fixture.txt", content)

	got, err := fileio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestReadFile_StrategyEquivalence(t *testing.T) {
	// Both access strategies must return byte-identical content.
	contents := [][]byte{
		nil,
		[]byte("x"),
		[]byte("line1\nline2\n"),
		bytes.Repeat([]byte("0123456789abcdef"), 1<<14), // spans many pages
	}

	for _, content := range contents {
		path := writeFixture(t, "fixture.bin", content)

		mapped, err := fileio.NewReader(fileio.WithStrategy(fileio.StrategyMapped)).ReadFile(path)
		require.NoError(t, err)
		buffered, err := fileio.NewReader(fileio.WithStrategy(fileio.StrategyBuffered)).ReadFile(path)
		require.NoError(t, err)
		auto, err := fileio.NewReader().ReadFile(path)
		require.NoError(t, err)

		assert.Equal(t, buffered, mapped)
		assert.Equal(t, buffered, auto)
		assert.Equal(t, len(content), len(auto))
	}
}

func TestReadFile_EmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.txt", nil)

	got, err := fileio.ReadFile(path)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReadFile_Nonexistent(t *testing.T) {
	_, err := fileio.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	var accessErr *fileio.AccessError
	require.ErrorAs(t, err, &accessErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFile_EmptyPath(t *testing.T) {
	_, err := fileio.ReadFile("")
	assert.ErrorIs(t, err, fileio.ErrEmptyPath)
}

func TestReadFile_Idempotent(t *testing.T) {
	content := []byte("same file, same bytes")
	path := writeFixture(t, "fixture.txt", content)

	first, err := fileio.ReadFile(path)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := fileio.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestReadFile_CallerOwnsResult(t *testing.T) {
	content := []byte("original")
	path := writeFixture(t, "fixture.txt", content)

	got, err := fileio.ReadFile(path)
	require.NoError(t, err)

	// Mutating the result must not be able to affect later reads.
	for i := range got {
		got[i] = 'X'
	}
	again, err := fileio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, again)
}

func TestReadFile_Decoding(t *testing.T) {
	content := bytes.Repeat([]byte("compressed corpus line\n"), 128)

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	path := writeFixture(t, "corpus.zst", enc.EncodeAll(content, nil))

	r := fileio.NewReader(fileio.WithDecoding())
	got, err := r.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	// Without decoding the raw compressed bytes come back untouched.
	raw, err := fileio.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, content, raw)
}

func TestReadFile_DecodingCorruptInput(t *testing.T) {
	path := writeFixture(t, "corpus.zst", []byte("not a zstd frame"))

	r := fileio.NewReader(fileio.WithDecoding())
	_, err := r.ReadFile(path)
	require.Error(t, err)

	var accessErr *fileio.AccessError
	assert.ErrorAs(t, err, &accessErr)
}

func TestReadFile_DecodingIgnoresUnknownExtensions(t *testing.T) {
	content := []byte("plain text, no codec")
	path := writeFixture(t, "notes.txt", content)

	r := fileio.NewReader(fileio.WithDecoding())
	got, err := r.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestMap_ZeroCopyView(t *testing.T) {
	content := []byte("mapped view of this file")
	path := writeFixture(t, "fixture.txt", content)

	m, err := fileio.Map(path)
	require.NoError(t, err)
	assert.Equal(t, content, m.Bytes())

	require.NoError(t, m.Close())
	assert.Nil(t, m.Bytes())
	require.NoError(t, m.Close())
}

func TestMap_Nonexistent(t *testing.T) {
	_, err := fileio.Map(filepath.Join(t.TempDir(), "missing.txt"))
	var accessErr *fileio.AccessError
	require.ErrorAs(t, err, &accessErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadFile_ConcurrentReaders(t *testing.T) {
	content := bytes.Repeat([]byte("concurrent"), 4096)
	path := writeFixture(t, "fixture.bin", content)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			got, err := fileio.ReadFile(path)
			if err == nil && !bytes.Equal(got, content) {
				err = errors.New("content mismatch")
			}
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}
