package ted

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/xyproto/ted/internal/log"
)

var (
	// ErrNotTerminal is returned when standard input is not a tty.
	ErrNotTerminal = errors.New("not a tty")
	// ErrCursorReport is returned when the cursor position reply is malformed.
	ErrCursorReport = errors.New("failed to parse cursor position report")
	// ErrInterrupted is returned by ReadKey after SIGINT or SIGTERM.
	ErrInterrupted = errors.New("interrupted")
)

// Terminal is what the editor needs from the controlling terminal.
type Terminal interface {
	EnterRawMode() error
	RestoreMode() error
	ReadKey() (Key, error)
	WindowSize() (rows, cols int, err error)
	io.Writer
}

// TTY is a Terminal backed by the process' stdin and stdout.
type TTY struct {
	in, out     int
	origTermios *unix.Termios
	sigs        chan os.Signal
}

// NewTTY returns a TTY for stdin/stdout. Raw mode is not entered yet.
func NewTTY() *TTY {
	return &TTY{in: unix.Stdin, out: unix.Stdout}
}

// EnterRawMode saves the current terminal attributes and switches the
// terminal to raw mode, where reads return after one byte or 100ms.
func (t *TTY) EnterRawMode() error {
	if t.origTermios != nil {
		return nil
	}
	if !term.IsTerminal(t.in) {
		return ErrNotTerminal
	}
	orig, err := unix.IoctlGetTermios(t.in, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}

	raw := *orig
	// Input modes
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output modes
	raw.Oflag &^= unix.OPOST
	// Control modes
	raw.Cflag |= unix.CS8
	// Local modes
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	// Control chars
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(t.in, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	t.origTermios = orig

	t.sigs = make(chan os.Signal, 4)
	signal.Notify(t.sigs, unix.SIGWINCH, unix.SIGINT, unix.SIGTERM)
	log.Debug("raw mode enabled on fd %d", t.in)
	return nil
}

// RestoreMode puts back the attributes saved by EnterRawMode.
// Calling it when raw mode is not active does nothing.
func (t *TTY) RestoreMode() error {
	if t.origTermios == nil {
		return nil
	}
	if t.sigs != nil {
		signal.Stop(t.sigs)
		t.sigs = nil
	}
	if err := unix.IoctlSetTermios(t.in, ioctlWriteTermios, t.origTermios); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	t.origTermios = nil
	log.Debug("raw mode disabled")
	return nil
}

// readByte reads at most one byte. ok is false when the read timed out.
func (t *TTY) readByte() (c byte, ok bool, err error) {
	var buf [1]byte
	n, err := unix.Read(t.in, buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err != nil && err != unix.EAGAIN && err != unix.EINTR {
		return 0, false, err
	}
	return 0, false, nil
}

// ReadKey blocks until one key is available and decodes it. Signals are
// checked between reads: SIGWINCH is reported as keyResize, SIGINT and
// SIGTERM as ErrInterrupted.
func (t *TTY) ReadKey() (Key, error) {
	for {
		select {
		case sig := <-t.sigs:
			if sig == unix.SIGWINCH {
				return keyResize, nil
			}
			log.Info("received %v", sig)
			return keyNull, fmt.Errorf("%w by %v", ErrInterrupted, sig)
		default:
		}
		c, ok, err := t.readByte()
		if err != nil {
			return keyNull, fmt.Errorf("read: %w", err)
		}
		if ok {
			k, err := readKeyFrom(c, t.readByte)
			if err != nil {
				return keyNull, fmt.Errorf("read: %w", err)
			}
			return k, nil
		}
	}
}

// readKeyFrom decodes the key starting with first, pulling the rest of an
// escape sequence from read. A read error ends decoding and is returned.
func readKeyFrom(first byte, read func() (byte, bool, error)) (Key, error) {
	var rerr error
	k := decodeKey(first, func() (byte, bool) {
		if rerr != nil {
			return 0, false
		}
		b, ok, err := read()
		if err != nil {
			rerr = err
			return 0, false
		}
		return b, ok
	})
	if rerr != nil {
		return keyNull, rerr
	}
	return k, nil
}

// WindowSize returns the terminal dimensions. When the ioctl cannot tell,
// the cursor is pushed to the bottom right corner and its position queried.
func (t *TTY) WindowSize() (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(t.out, unix.TIOCGWINSZ)
	if err == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}
	if _, err := t.Write([]byte("\x1b[999C\x1b[999B")); err != nil {
		return 0, 0, err
	}
	return t.cursorPosition()
}

func (t *TTY) cursorPosition() (rows, cols int, err error) {
	if _, err := t.Write([]byte("\x1b[6n")); err != nil {
		return 0, 0, err
	}
	var buf [32]byte
	i := 0
	for i < len(buf)-1 {
		c, ok, err := t.readByte()
		if err != nil {
			return 0, 0, fmt.Errorf("read: %w", err)
		}
		if !ok || c == 'R' {
			break
		}
		buf[i] = c
		i++
	}
	return parseCursorReport(buf[:i])
}

// parseCursorReport parses the body of an "ESC [ rows ; cols R" reply,
// without the terminating R.
func parseCursorReport(buf []byte) (rows, cols int, err error) {
	if len(buf) < 2 || Key(buf[0]) != keyEsc || buf[1] != '[' {
		return 0, 0, ErrCursorReport
	}
	if _, err := fmt.Sscanf(string(buf[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrCursorReport, err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, ErrCursorReport
	}
	return rows, cols, nil
}

// Write sends p to the terminal in a single write call.
func (t *TTY) Write(p []byte) (int, error) {
	n, err := unix.Write(t.out, p)
	if err != nil {
		return n, fmt.Errorf("write: %w", err)
	}
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}
