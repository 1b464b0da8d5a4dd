package ted

import (
	"fmt"
	"strconv"
	"time"
)

// ---------- Terminal update ----------

func (e *Editor) drawRows(ab *appendBuffer) {
	for y := 0; y < e.screenrows; y++ {
		filerow := e.rowoff + y

		if filerow >= len(e.rows) {
			if len(e.rows) == 0 && y == e.screenrows/3 {
				e.drawWelcome(ab)
			} else {
				ab.appendByte('~')
			}
			ab.appendString("\x1b[0K\r\n")
			continue
		}

		r := e.rows[filerow]
		start := min(e.coloff, len(r.render))
		end := min(len(r.render), start+e.screencols)
		e.drawRender(ab, r.render[start:end], r.hl[start:end])
		ab.appendString("\x1b[39m")
		ab.appendString("\x1b[0K")
		ab.appendString("\r\n")
	}
}

func (e *Editor) drawWelcome(ab *appendBuffer) {
	welcome := fmt.Sprintf("Ted editor -- version %s", Version)
	if len(welcome) > e.screencols {
		welcome = welcome[:e.screencols]
	}
	padding := (e.screencols - len(welcome)) / 2
	if padding > 0 {
		ab.appendByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		ab.appendByte(' ')
	}
	ab.appendString(welcome)
}

// drawRender writes one visible slice of a row, switching colours only
// when the highlight class changes.
func (e *Editor) drawRender(ab *appendBuffer, render []byte, hl []hlClass) {
	currentColor := -1
	for j, c := range render {
		switch hl[j] {
		case hlNonprint:
			ab.appendString("\x1b[7m")
			if c <= 26 {
				ab.appendByte('@' + c)
			} else {
				ab.appendByte('?')
			}
			ab.appendString("\x1b[0m")
			if currentColor != -1 {
				ab.appendString("\x1b[" + strconv.Itoa(currentColor) + "m")
			}
		case hlNormal:
			if currentColor != -1 {
				ab.appendString("\x1b[39m")
				currentColor = -1
			}
			ab.appendByte(c)
		default:
			color := hlColor(hl[j])
			if color != currentColor {
				ab.appendString("\x1b[" + strconv.Itoa(color) + "m")
				currentColor = color
			}
			ab.appendByte(c)
		}
	}
}

func (e *Editor) drawStatusBar(ab *appendBuffer) {
	ab.appendString("\x1b[7m")
	modified := ""
	if e.dirty > 0 {
		modified = "(modified)"
	}
	fname := e.filename
	if fname == "" {
		fname = "[No Name]"
	}
	status := fmt.Sprintf("%.20s - %d lines %s", fname, len(e.rows), modified)
	rstatus := fmt.Sprintf("%d/%d", e.cy+1, len(e.rows))
	if len(status) > e.screencols {
		status = status[:e.screencols]
	}
	ab.appendString(status)
	for n := len(status); n < e.screencols; n++ {
		if e.screencols-n == len(rstatus) {
			ab.appendString(rstatus)
			break
		}
		ab.appendByte(' ')
	}
	ab.appendString("\x1b[m\r\n")
}

func (e *Editor) drawMessageBar(ab *appendBuffer) {
	ab.appendString("\x1b[0K")
	if e.statusmsg == "" || time.Since(e.statustime) >= e.statusDuration {
		return
	}
	msg := e.statusmsg
	if len(msg) > e.screencols {
		msg = msg[:e.screencols]
	}
	ab.appendString(msg)
}

// refreshScreen redraws the whole screen as a single write.
func (e *Editor) refreshScreen() {
	e.scroll()

	var ab appendBuffer
	ab.appendString("\x1b[?25l") // Hide cursor
	ab.appendString("\x1b[H")    // Go home

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	ab.appendString(fmt.Sprintf("\x1b[%d;%dH", e.cy-e.rowoff+1, e.rx-e.coloff+1))
	ab.appendString("\x1b[?25h") // Show cursor
	if err := ab.flush(e.term); err != nil {
		e.fail(fmt.Errorf("refresh screen: %w", err))
	}
}
