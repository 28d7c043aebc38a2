package report

import (
	"errors"

	"github.com/ezrec/opfreq/translate"
)

var f = translate.From

var (
	ErrNoData       = errors.New(f("no executions counted"))
	ErrNameMismatch = errors.New(f("mnemonic does not match table"))
	ErrSlotRange    = errors.New(f("slot outside of table"))
)

// ErrTableSize is a count table that does not cover the mnemonic table.
type ErrTableSize struct {
	Table  int
	Counts int
}

func (err ErrTableSize) Error() string {
	return f("count table has %v slots, mnemonic table has %v", err.Counts, err.Table)
}

// ErrAnnotate locates a dispatch table entry that could not be annotated.
type ErrAnnotate struct {
	LineNo int
	Slot   int
	Name   string
	Err    error
}

func (err ErrAnnotate) Error() string {
	return f("line %d slot 0x%03X %v: %v", err.LineNo, err.Slot, err.Name, err.Err)
}

func (err ErrAnnotate) Unwrap() error {
	return err.Err
}
