package freq

import (
	"errors"

	"github.com/ezrec/opfreq/translate"
)

var f = translate.From

var (
	ErrFieldCount    = errors.New(f("expected <count> <opcode>"))
	ErrCountNegative = errors.New(f("count negative"))
	ErrCountOverflow = errors.New(f("count overflow"))
)

// ErrParseNumber is a field that is not a base 10 integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrOpcodeRange is an opcode outside of the mnemonic table.
type ErrOpcodeRange struct {
	Opcode int64
	Size   int
}

func (err ErrOpcodeRange) Error() string {
	return f("opcode %v out of range [0, %v)", err.Opcode, err.Size)
}

// ErrSyntax locates a malformed record.
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
