package ted

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xyproto/ted/internal/config"
)

var errNoMoreKeys = errors.New("no more scripted keys")

// virtualTerminal is a Terminal for tests. It replays scripted keys and
// records everything written to it.
type virtualTerminal struct {
	keys       []Key
	out        bytes.Buffer
	writes     int
	rows, cols int
	sizeErr    error
	readErr    error // returned once the script is used up

	raw        bool
	enterCount int
	exitCount  int
}

func newVirtualTerminal(rows, cols int) *virtualTerminal {
	return &virtualTerminal{rows: rows, cols: cols}
}

func (v *virtualTerminal) EnterRawMode() error {
	v.raw = true
	v.enterCount++
	return nil
}

func (v *virtualTerminal) RestoreMode() error {
	if v.raw {
		v.exitCount++
	}
	v.raw = false
	return nil
}

func (v *virtualTerminal) ReadKey() (Key, error) {
	if len(v.keys) == 0 {
		if v.readErr != nil {
			return keyNull, v.readErr
		}
		return keyNull, errNoMoreKeys
	}
	k := v.keys[0]
	v.keys = v.keys[1:]
	return k, nil
}

func (v *virtualTerminal) WindowSize() (int, int, error) {
	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.rows, v.cols, nil
}

func (v *virtualTerminal) Write(p []byte) (int, error) {
	v.writes++
	return v.out.Write(p)
}

func (v *virtualTerminal) push(keys ...Key) {
	v.keys = append(v.keys, keys...)
}

func (v *virtualTerminal) typeString(s string) {
	for i := 0; i < len(s); i++ {
		v.keys = append(v.keys, Key(s[i]))
	}
}

// newTestEditor returns an editor on a rows x cols virtual terminal holding
// lines, with a clean dirty counter.
func newTestEditor(t *testing.T, rows, cols int, lines ...string) (*Editor, *virtualTerminal) {
	t.Helper()
	vt := newVirtualTerminal(rows, cols)
	e := New(vt, config.Default())
	e.setWindowSize(rows, cols)
	for _, l := range lines {
		e.insertRow(len(e.rows), []byte(l))
	}
	e.dirty = 0
	return e, vt
}

func rowStrings(e *Editor) []string {
	out := make([]string, len(e.rows))
	for i, r := range e.rows {
		out[i] = string(r.chars)
	}
	return out
}
