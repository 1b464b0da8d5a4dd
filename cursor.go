package ted

// scroll recomputes rx and the offsets so the cursor is on screen.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < len(e.rows) {
		e.rx = cxToRx(e.rows[e.cy], e.cx, e.tabStop)
	}
	if e.cy < e.rowoff {
		e.rowoff = e.cy
	}
	if e.cy >= e.rowoff+e.screenrows {
		e.rowoff = e.cy - e.screenrows + 1
	}
	if e.rx < e.coloff {
		e.coloff = e.rx
	}
	if e.rx >= e.coloff+e.screencols {
		e.coloff = e.rx - e.screencols + 1
	}
}

// ---------- Cursor movement ----------

func (e *Editor) currentRow() *erow {
	if e.cy < len(e.rows) {
		return e.rows[e.cy]
	}
	return nil
}

func (e *Editor) moveCursor(key Key) {
	row := e.currentRow()

	switch key {
	case arrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.rows[e.cy].chars)
		}
	case arrowRight:
		if row != nil && e.cx < len(row.chars) {
			e.cx++
		} else if row != nil && e.cx == len(row.chars) {
			e.cy++
			e.cx = 0
		}
	case arrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case arrowDown:
		if e.cy < len(e.rows) {
			e.cy++
		}
	}

	// Fix cx if current line doesn't have enough chars
	rowlen := 0
	if row := e.currentRow(); row != nil {
		rowlen = len(row.chars)
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
}

// movePage jumps to the top or bottom of the visible rows and then moves
// one screen further.
func (e *Editor) movePage(key Key) {
	dir := arrowDown
	if key == pageUp {
		e.cy = e.rowoff
		dir = arrowUp
	} else {
		e.cy = min(e.rowoff+e.screenrows-1, len(e.rows))
	}
	for range e.screenrows {
		e.moveCursor(dir)
	}
}
