package freq

import (
	"errors"
)

// TieBreak orders opcodes with equal counts.
type TieBreak int

//go:generate go tool stringer -linecomment -type=TieBreak
const (
	TIE_ASCENDING  = TieBreak(0) // asc
	TIE_DESCENDING = TieBreak(1) // desc
)

var ErrTieBreak = errors.New(f("tie break must be 'asc' or 'desc'"))

// ParseTieBreak returns the TieBreak named by its String() form.
func ParseTieBreak(name string) (tie TieBreak, err error) {
	for _, tie = range []TieBreak{TIE_ASCENDING, TIE_DESCENDING} {
		if tie.String() == name {
			return
		}
	}

	return TIE_ASCENDING, ErrTieBreak
}
