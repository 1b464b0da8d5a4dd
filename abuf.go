package ted

import "io"

// appendBuffer collects one full frame so it reaches the terminal in a
// single write.
type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) appendString(s string) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendByte(c byte) {
	ab.b = append(ab.b, c)
}

// flush writes the whole buffer with one Write call and empties it.
func (ab *appendBuffer) flush(w io.Writer) error {
	_, err := w.Write(ab.b)
	ab.b = ab.b[:0]
	return err
}
