package ted

import (
	"bytes"

	"github.com/xyproto/ted/internal/log"
)

// searchState lives for one find session.
type searchState struct {
	lastMatch int // row index of the last match, -1 for none
	direction int // 1 forward, -1 backward
	found     bool

	savedHLLine int
	savedHL     []hlClass
}

func newSearchState() *searchState {
	return &searchState{lastMatch: -1, direction: 1, savedHLLine: -1}
}

func (s *searchState) reset() {
	s.lastMatch = -1
	s.direction = 1
}

// restoreHighlight removes the match marking left by the previous step.
func (e *Editor) restoreHighlight(s *searchState) {
	if s.savedHL != nil && s.savedHLLine < len(e.rows) {
		copy(e.rows[s.savedHLLine].hl, s.savedHL)
	}
	s.savedHL = nil
	s.savedHLLine = -1
}

// findCallback is the per-keystroke step of an incremental search.
func (e *Editor) findCallback(s *searchState, query string, k Key) promptAction {
	e.restoreHighlight(s)

	switch k {
	case keyEnter, keyEsc:
		s.reset()
		return promptContinue
	case arrowRight, arrowDown:
		s.direction = 1
	case arrowLeft:
		s.direction = -1
	default:
		s.reset()
	}
	if s.lastMatch == -1 {
		s.direction = 1
	}
	s.found = false
	if query == "" {
		return promptContinue
	}
	e.findNext(s, []byte(query))
	return promptContinue
}

// findNext scans at most len(rows) rows starting one past the last match,
// wrapping at either end, and moves the cursor to the first hit.
func (e *Editor) findNext(s *searchState, query []byte) {
	current := s.lastMatch
	for range len(e.rows) {
		current += s.direction
		if current == -1 {
			current = len(e.rows) - 1
		} else if current == len(e.rows) {
			current = 0
		}
		row := e.rows[current]
		off := bytes.Index(row.render, query)
		if off == -1 {
			continue
		}
		s.lastMatch = current
		s.found = true
		e.cy = current
		e.cx = rxToCx(row, off, e.tabStop)
		// Scroll so the match ends up on the top line.
		e.rowoff = len(e.rows)

		s.savedHLLine = current
		s.savedHL = markMatch(row, off, len(query))
		log.Debug("search %q matched row %d col %d", query, current, e.cx)
		return
	}
}

// find runs an incremental search. Cancelling puts the cursor and the
// viewport back where they were.
func (e *Editor) find() {
	savedCx, savedCy := e.cx, e.cy
	savedColoff, savedRowoff := e.coloff, e.rowoff

	s := newSearchState()
	query, ok := e.prompt("Search: %s (Use ESC/Arrows/Enter)", func(query string, k Key) promptAction {
		return e.findCallback(s, query, k)
	})
	e.restoreHighlight(s)
	if !ok {
		e.cx, e.cy = savedCx, savedCy
		e.coloff, e.rowoff = savedColoff, savedRowoff
		return
	}
	if !s.found {
		e.SetStatusMessage("No match for %q", query)
	}
}
