package ted

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenReadsLines(t *testing.T) {
	path := writeTemp(t, "a.txt", "one\n\ttwo\n\nfour\n")
	e, _ := newTestEditor(t, 10, 40)

	require.NoError(t, e.Open(path))
	assert.Equal(t, []string{"one", "\ttwo", "", "four"}, rowStrings(e))
	assert.Equal(t, path, e.Filename())
	assert.False(t, e.FileWasModified())
}

func TestOpenStripsCarriageReturns(t *testing.T) {
	path := writeTemp(t, "dos.txt", "a\r\nb\r\n")
	e, _ := newTestEditor(t, 10, 40)

	require.NoError(t, e.Open(path))
	assert.Equal(t, []string{"a", "b"}, rowStrings(e))
}

func TestOpenLastLineWithoutNewline(t *testing.T) {
	path := writeTemp(t, "partial.txt", "a\nb")
	e, _ := newTestEditor(t, 10, 40)

	require.NoError(t, e.Open(path))
	assert.Equal(t, []string{"a", "b"}, rowStrings(e))
}

func TestOpenLongLine(t *testing.T) {
	long := strings.Repeat("x", 200_000)
	path := writeTemp(t, "long.txt", long+"\n")
	e, _ := newTestEditor(t, 10, 40)

	require.NoError(t, e.Open(path))
	require.Len(t, e.rows, 1)
	assert.Len(t, e.rows[0].chars, len(long))
}

func TestOpenMissingFileFails(t *testing.T) {
	e, _ := newTestEditor(t, 10, 40)
	err := e.Open(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, e.Filename())
}

func TestSaveRoundTrip(t *testing.T) {
	content := "first line\n\tindented\n\n  trailing spaces  \nlast\n"
	path := writeTemp(t, "round.txt", content)
	e, _ := newTestEditor(t, 10, 40)
	require.NoError(t, e.Open(path))

	require.NoError(t, e.Save())
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
	assert.Equal(t, path+": 47 bytes written to disk", e.statusmsg)
}

func TestSaveTruncatesLongerFile(t *testing.T) {
	path := writeTemp(t, "shrink.txt", "a much longer original content\nwith two lines\n")
	e, _ := newTestEditor(t, 10, 40, "short")
	e.filename = path
	e.dirty = 1

	require.NoError(t, e.Save())
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(got))
	assert.False(t, e.FileWasModified())
}

func TestSaveAsPrompt(t *testing.T) {
	e, vt := newTestEditor(t, 10, 200, "hello")
	e.dirty = 1
	path := filepath.Join(t.TempDir(), "new.txt")
	vt.typeString(path)
	vt.push(keyEnter)

	require.NoError(t, e.Save())
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(got))
	assert.Equal(t, path, e.Filename())
	assert.False(t, e.FileWasModified())
	assert.Contains(t, e.statusmsg, "6 bytes written to disk")
}

func TestSaveAsCancelled(t *testing.T) {
	e, vt := newTestEditor(t, 10, 40, "hello")
	e.dirty = 1
	vt.typeString("name")
	vt.push(keyEsc)

	assert.ErrorIs(t, e.Save(), ErrNoFilename)
	assert.Equal(t, "Save aborted", e.statusmsg)
	assert.Empty(t, e.Filename())
	assert.True(t, e.FileWasModified())
}

func TestSaveFailureKeepsDirty(t *testing.T) {
	e, _ := newTestEditor(t, 10, 40, "hello")
	e.filename = t.TempDir() // a directory cannot be opened for writing
	e.dirty = 1

	assert.Error(t, e.Save())
	assert.True(t, strings.HasPrefix(e.statusmsg, "Can't save! I/O error: "), e.statusmsg)
	assert.True(t, e.FileWasModified())
	assert.Equal(t, []string{"hello"}, rowStrings(e))
}
