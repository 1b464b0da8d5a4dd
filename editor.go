// Package ted is a small terminal text editor in the spirit of antirez's
// kilo. It talks VT100 escape sequences directly to a raw-mode terminal,
// keeps the file as a slice of rows with a tab-expanded render form, and
// supports editing, incremental search and saving.
package ted

import (
	"fmt"
	"time"

	"github.com/xyproto/ted/internal/config"
	"github.com/xyproto/ted/internal/log"
)

// Version is shown on the welcome screen.
const Version = "0.1.0"

const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// Editor holds the complete state of the editor.
type Editor struct {
	term Terminal

	cx, cy int // cursor in chars coordinates, cy may equal len(rows)
	rx     int // cursor column in render coordinates

	rowoff     int
	coloff     int
	screenrows int
	screencols int

	rows     []*erow
	dirty    int
	filename string

	statusmsg      string
	statustime     time.Time
	statusDuration time.Duration

	tabStop   int
	quitTimes int
	quitLeft  int

	// err is the first terminal failure; once set the editor stops.
	err error
}

// New creates an Editor that draws on t. A nil cfg means defaults.
func New(t Terminal, cfg *config.Config) *Editor {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Editor{
		term:           t,
		tabStop:        max(cfg.TabStop, 1),
		quitTimes:      max(cfg.QuitTimes, 1),
		quitLeft:       max(cfg.QuitTimes, 1),
		statusDuration: cfg.StatusDuration,
	}
}

// Filename returns the file the buffer is bound to, if any.
func (e *Editor) Filename() string {
	return e.filename
}

// FileWasModified returns true if the file has unsaved changes.
func (e *Editor) FileWasModified() bool {
	return e.dirty > 0
}

// SetStatusMessage sets the editor status message.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusmsg = fmt.Sprintf(format, args...)
	e.statustime = time.Now()
}

func (e *Editor) fail(err error) {
	if e.err == nil {
		e.err = err
		log.Error("%v", err)
	}
}

// readKey reads one key. On a terminal failure it records the error and
// reports Escape, which unwinds any open prompt.
func (e *Editor) readKey() Key {
	k, err := e.term.ReadKey()
	if err != nil {
		e.fail(err)
		return keyEsc
	}
	return k
}

func (e *Editor) setWindowSize(rows, cols int) {
	e.screenrows = max(rows-2, 1) // room for status bar and message line
	e.screencols = max(cols, 1)
}

func (e *Editor) updateWindowSize() error {
	rows, cols, err := e.term.WindowSize()
	if err != nil {
		return fmt.Errorf("get window size: %w", err)
	}
	e.setWindowSize(rows, cols)
	log.Debug("window size %dx%d", cols, rows)
	return nil
}

// ---------- Event processing ----------

// processKeypress reads and handles one key. It returns false when the
// user asked to quit.
func (e *Editor) processKeypress() bool {
	c := e.readKey()
	switch c {
	case keyResize:
		if err := e.updateWindowSize(); err != nil {
			e.fail(err)
		}
		return true
	case keyEnter:
		e.insertNewline()
	case ctrlQ:
		if e.dirty > 0 {
			e.quitLeft--
			if e.quitLeft > 0 {
				e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitLeft)
				return true
			}
		}
		log.Info("quit")
		return false
	case ctrlS:
		if err := e.Save(); err != nil {
			log.Warn("save: %v", err)
		}
	case ctrlF:
		e.find()
	case ctrlA, homeKey:
		e.cx = 0
	case ctrlE, endKey:
		if e.cy < len(e.rows) {
			e.cx = len(e.rows[e.cy].chars)
		}
	case keyBackspace, ctrlH:
		e.delChar()
	case delKey:
		e.moveCursor(arrowRight)
		e.delChar()
	case pageUp, pageDown:
		e.movePage(c)
	case arrowUp, arrowDown, arrowLeft, arrowRight:
		e.moveCursor(c)
	case ctrlC, ctrlD, ctrlL, keyEsc:
		// Nothing
	default:
		e.insertChar(byte(c))
	}
	e.quitLeft = e.quitTimes
	return true
}

// Run is the main editor loop. It enables raw mode, switches to the
// alternate screen buffer, and processes keys until the user quits or the
// terminal fails. SIGINT and SIGTERM surface as read errors, so the
// terminal is restored on every way out, including panics.
func (e *Editor) Run() (err error) {
	if err := e.term.EnterRawMode(); err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		if rerr := e.term.RestoreMode(); rerr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", rerr)
		}
	}()

	// Switch to alternate screen buffer
	e.term.Write([]byte("\x1b[?1049h"))
	defer e.term.Write([]byte("\x1b[2J\x1b[H\x1b[?1049l"))

	if err := e.updateWindowSize(); err != nil {
		return err
	}

	e.SetStatusMessage(helpMessage)
	for {
		e.refreshScreen()
		if e.err != nil {
			return e.err
		}
		if !e.processKeypress() {
			return nil
		}
		if e.err != nil {
			return e.err
		}
	}
}
