package ted

import (
	"bytes"
	"slices"
)

// erow represents a single line of the file being edited.
type erow struct {
	chars  []byte
	render []byte
	hl     []hlClass
}

// expandTabs appends src to dst with every tab expanded to spaces up to
// the next multiple of tabStop.
func expandTabs(dst, src []byte, tabStop int) []byte {
	for _, c := range src {
		if Key(c) == keyTab {
			dst = append(dst, ' ')
			for len(dst)%tabStop != 0 {
				dst = append(dst, ' ')
			}
		} else {
			dst = append(dst, c)
		}
	}
	return dst
}

// cxToRx maps a column in chars to the matching column in render.
func cxToRx(row *erow, cx, tabStop int) int {
	cx = min(max(cx, 0), len(row.chars))
	rx := 0
	for _, c := range row.chars[:cx] {
		if Key(c) == keyTab {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// rxToCx maps a column in render back to the column in chars whose
// rendering covers it.
func rxToCx(row *erow, rx, tabStop int) int {
	curRx := 0
	for cx, c := range row.chars {
		if Key(c) == keyTab {
			curRx += (tabStop - 1) - (curRx % tabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return len(row.chars)
}

// ---------- Row operations ----------

func (e *Editor) updateRow(row *erow) {
	row.render = expandTabs(row.render[:0], row.chars, e.tabStop)
	updateHighlight(row)
}

func (e *Editor) insertRow(at int, s []byte) {
	at = min(max(at, 0), len(e.rows))
	row := &erow{chars: bytes.Clone(s)}
	if row.chars == nil {
		row.chars = []byte{}
	}
	e.rows = slices.Insert(e.rows, at, row)
	e.updateRow(row)
	e.dirty++
}

func (e *Editor) delRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows = slices.Delete(e.rows, at, at+1)
	e.dirty++
}

func (e *Editor) rowInsertChar(row *erow, at int, c byte) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}
	row.chars = slices.Insert(row.chars, at, c)
	e.updateRow(row)
}

func (e *Editor) rowAppendBytes(row *erow, s []byte) {
	row.chars = append(row.chars, s...)
	e.updateRow(row)
	e.dirty++
}

func (e *Editor) rowDelChar(row *erow, at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}
	row.chars = slices.Delete(row.chars, at, at+1)
	e.updateRow(row)
	e.dirty++
}

// rowsToBytes joins all rows with a newline after each one.
func (e *Editor) rowsToBytes() []byte {
	n := 0
	for _, row := range e.rows {
		n += len(row.chars) + 1
	}
	buf := make([]byte, 0, n)
	for _, row := range e.rows {
		buf = append(buf, row.chars...)
		buf = append(buf, '\n')
	}
	return buf
}
