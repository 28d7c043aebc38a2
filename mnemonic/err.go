package mnemonic

import (
	"errors"

	"github.com/ezrec/opfreq/translate"
)

var f = translate.From

var (
	ErrTableEmpty = errors.New(f("mnemonic table empty"))
	ErrDispatch   = errors.New(f("DISPATCH is not a list"))
	ErrEntryType  = errors.New(f("entry is not a string"))
)

// ErrName is an invalid mnemonic.
type ErrName string

func (err ErrName) Error() string {
	return f("'%v' is not a mnemonic", string(err))
}

// ErrSlot is a slot tag that does not match the entry position.
type ErrSlot struct {
	Slot int // Slot number from the tag.
	Want int // Position of the entry in the table.
}

func (err ErrSlot) Error() string {
	return f("slot 0x%03X out of sequence, expected 0x%03X", err.Slot, err.Want)
}

// ErrSyntax locates an error in a text table definition.
type ErrSyntax struct {
	Name   string
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("%v:%d '%v' %v", err.Name, err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrEntry locates an error in a Starlark table definition.
type ErrEntry struct {
	Name  string
	Index int
	Err   error
}

func (err ErrEntry) Error() string {
	return f("%v: DISPATCH[%d] %v", err.Name, err.Index, err.Err)
}

func (err ErrEntry) Unwrap() error {
	return err.Err
}
