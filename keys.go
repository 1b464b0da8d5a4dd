package ted

import "fmt"

// Key is a single decoded input event. Values below 256 are literal bytes,
// values from 1000 and up are named keys decoded from escape sequences.
type Key int

// Key constants
const (
	keyNull      Key = 0
	ctrlA        Key = 1
	ctrlC        Key = 3
	ctrlD        Key = 4
	ctrlE        Key = 5
	ctrlF        Key = 6
	ctrlH        Key = 8
	keyTab       Key = 9
	ctrlL        Key = 12
	keyEnter     Key = 13
	ctrlQ        Key = 17
	ctrlS        Key = 19
	keyEsc       Key = 27
	keyBackspace Key = 127
)

const (
	arrowLeft Key = iota + 1000
	arrowRight
	arrowUp
	arrowDown
	delKey
	homeKey
	endKey
	pageUp
	pageDown

	// keyResize is never typed by the user; the TTY reports it when the
	// window size changed while waiting for input.
	keyResize
)

var keyNames = map[Key]string{
	keyTab:       "Tab",
	keyEnter:     "Enter",
	keyEsc:       "Escape",
	keyBackspace: "Backspace",
	arrowLeft:    "ArrowLeft",
	arrowRight:   "ArrowRight",
	arrowUp:      "ArrowUp",
	arrowDown:    "ArrowDown",
	delKey:       "Delete",
	homeKey:      "Home",
	endKey:       "End",
	pageUp:       "PageUp",
	pageDown:     "PageDown",
	keyResize:    "Resize",
}

// String returns a readable name for the key, used in debug logs.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch {
	case k > 0 && k < 32:
		return fmt.Sprintf("Ctrl-%c", '@'+byte(k))
	case k >= 32 && k < 127:
		return string(rune(k))
	case k >= 0 && k < 256:
		return fmt.Sprintf("0x%02x", int(k))
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// isControl reports whether k is an ASCII control byte.
func isControl(k Key) bool {
	return (k >= 0 && k < 32) || k == 127
}

// decodeKey turns the first byte of input, plus whatever follows it within
// the same read budget, into a Key. next returns false when no further byte
// arrived in time. Unknown or truncated escape sequences become keyEsc.
func decodeKey(first byte, next func() (byte, bool)) Key {
	if Key(first) != keyEsc {
		return Key(first)
	}
	seq0, ok := next()
	if !ok {
		return keyEsc
	}
	seq1, ok := next()
	if !ok {
		return keyEsc
	}
	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, ok := next()
			if !ok || seq2 != '~' {
				return keyEsc
			}
			switch seq1 {
			case '1', '7':
				return homeKey
			case '3':
				return delKey
			case '4', '8':
				return endKey
			case '5':
				return pageUp
			case '6':
				return pageDown
			}
			return keyEsc
		}
		switch seq1 {
		case 'A':
			return arrowUp
		case 'B':
			return arrowDown
		case 'C':
			return arrowRight
		case 'D':
			return arrowLeft
		case 'H':
			return homeKey
		case 'F':
			return endKey
		}
	case 'O':
		switch seq1 {
		case 'H':
			return homeKey
		case 'F':
			return endKey
		}
	}
	return keyEsc
}
