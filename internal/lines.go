package internal

import (
	"bufio"
	"io"
	"iter"
)

// Lines iterates over the lines of r, yielding the 1-based line number and
// the line text without its terminator. The returned function reports the
// first read error, and must be checked once iteration is complete.
func Lines(r io.Reader) (seq iter.Seq2[int, string], errf func() error) {
	sc := bufio.NewScanner(r)

	seq = func(yield func(lineno int, line string) bool) {
		lineno := 0
		for sc.Scan() {
			lineno++
			if !yield(lineno, sc.Text()) {
				return // Stop if the consumer stops
			}
		}
	}

	errf = sc.Err

	return
}
