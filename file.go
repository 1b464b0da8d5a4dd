package ted

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xyproto/ted/internal/log"
)

// ErrNoFilename is returned by Save when no file name was given.
var ErrNoFilename = errors.New("no filename")

// ---------- File I/O ----------

// Open loads a file into the editor, one row per line. Trailing newline
// and carriage return bytes are stripped.
func (e *Editor) Open(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	e.filename = filename
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			n := len(line)
			for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
				n--
			}
			e.insertRow(len(e.rows), line[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", filename, err)
		}
	}
	e.dirty = 0
	log.Info("opened %s (%d lines)", filename, len(e.rows))
	return nil
}

// Save writes the buffer to disk, asking for a file name first if the
// buffer has none. The outcome is reported on the status line.
func (e *Editor) Save() error {
	if e.filename == "" {
		name, ok := e.prompt("Save as: %s (ESC to cancel)", nil)
		if !ok {
			e.SetStatusMessage("Save aborted")
			return ErrNoFilename
		}
		e.filename = name
	}

	buf := e.rowsToBytes()
	if err := writeFile(e.filename, buf); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		return fmt.Errorf("save %s: %w", e.filename, err)
	}
	e.dirty = 0
	e.SetStatusMessage("%s: %d bytes written to disk", e.filename, len(buf))
	log.Info("saved %s (%d bytes)", e.filename, len(buf))
	return nil
}

// writeFile opens or creates name, truncates it to len(buf) and writes buf.
func writeFile(name string, buf []byte) error {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	if err := f.Truncate(int64(len(buf))); err != nil {
		f.Close()
		return err
	}
	if _, err := f.Write(buf); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
