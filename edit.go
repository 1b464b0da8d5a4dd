package ted

import "bytes"

// ---------- Editor operations ----------

func (e *Editor) insertChar(c byte) {
	if e.cy == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	e.rowInsertChar(e.rows[e.cy], e.cx, c)
	e.cx++
	e.dirty++
}

func (e *Editor) insertNewline() {
	if e.cx == 0 || e.cy >= len(e.rows) {
		e.insertRow(e.cy, nil)
	} else {
		row := e.rows[e.cy]
		e.cx = min(e.cx, len(row.chars))
		e.insertRow(e.cy+1, bytes.Clone(row.chars[e.cx:]))
		row.chars = row.chars[:e.cx]
		e.updateRow(row)
	}
	e.cy++
	e.cx = 0
}

func (e *Editor) delChar() {
	if e.cy >= len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}
	row := e.rows[e.cy]
	if e.cx > 0 {
		e.rowDelChar(row, e.cx-1)
		e.cx--
		return
	}
	prev := e.rows[e.cy-1]
	e.cx = len(prev.chars)
	e.rowAppendBytes(prev, row.chars)
	e.delRow(e.cy)
	e.cy--
}
