package store

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "msxconv.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, s.Close())
	})
	return s
}

func TestHash(t *testing.T) {
	sha, err := Hash(strings.NewReader("abc"))
	require.NoError(t, err)
	assert.Equal(t, "A9993E364706816ABA3E25717850C26C9CD0D89D", sha)
}

func TestFindMissing(t *testing.T) {
	s := open(t)

	files, err := s.Find("A9993E364706816ABA3E25717850C26C9CD0D89D", "screen8")
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestPutFind(t *testing.T) {
	s := open(t)

	files := map[string][]byte{
		"s50": append([]byte{0xfe, 0x00, 0x00, 0x00, 0xd4, 0x00, 0x00}, bytes.Repeat([]byte{0x11}, 27136)...),
		"pal": bytes.Repeat([]byte{0x77, 0x07}, 16),
	}
	require.NoError(t, s.Put("ABC", "screen5", files))

	got, err := s.Find("ABC", "screen5")
	require.NoError(t, err)
	assert.Equal(t, files, got)

	// Different mode, different key
	got, err = s.Find("ABC", "screen8")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPutReplaces(t *testing.T) {
	s := open(t)

	require.NoError(t, s.Put("ABC", "screen8", map[string][]byte{"sc8": {0x01}, "old": {0x02}}))
	require.NoError(t, s.Put("ABC", "screen8", map[string][]byte{"sc8": {0x03}}))

	got, err := s.Find("ABC", "screen8")
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"sc8": {0x03}}, got)
}
