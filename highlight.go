package ted

import "slices"

// hlClass is the display class of one rendered byte.
type hlClass uint8

// Highlight types
const (
	hlNormal hlClass = iota
	hlNonprint
	hlMatch
)

func isPrintable(c byte) bool {
	return c >= 32 && c < 127
}

// updateHighlight recomputes row.hl from row.render. Any match marking
// is dropped.
func updateHighlight(row *erow) {
	row.hl = slices.Grow(row.hl[:0], len(row.render))[:len(row.render)]
	for i, c := range row.render {
		if isPrintable(c) {
			row.hl[i] = hlNormal
		} else {
			row.hl[i] = hlNonprint
		}
	}
}

// markMatch paints n rendered bytes starting at off as a search match and
// returns the previous classes so they can be put back.
func markMatch(row *erow, off, n int) []hlClass {
	saved := slices.Clone(row.hl)
	for j := off; j < off+n && j < len(row.hl); j++ {
		row.hl[j] = hlMatch
	}
	return saved
}

func hlColor(hl hlClass) int {
	switch hl {
	case hlMatch:
		return 34 // blue
	default:
		return 37 // white
	}
}
