package braid

import "strings"

// String renders the braid history as a crossing diagram. Tracks sit at
// even columns; each step draws "\ /", " X ", "/ \" across every swapped
// pair, followed by a plain track line.
//
// For four anyons and the single step {(1 2)}:
//
//	| | | |
//	| \ / |
//	|  X  |
//	| / \ |
//	| | | |
func (e *Engine) String() string {
	n := e.st.Len()
	width := 2*n - 1
	track := func() []byte {
		row := []byte(strings.Repeat(" ", width))
		for i := 0; i < n; i++ {
			row[2*i] = '|'
		}

		return row
	}

	lines := []string{string(track())}
	for _, step := range e.history {
		top, mid, bot := track(), track(), track()
		for _, s := range step {
			c := 2 * s.lo()
			top[c], top[c+2] = '\\', '/'
			mid[c], mid[c+1], mid[c+2] = ' ', 'X', ' '
			bot[c], bot[c+2] = '/', '\\'
		}
		lines = append(lines, string(top), string(mid), string(bot), string(track()))
	}

	return strings.Join(lines, "\n")
}
