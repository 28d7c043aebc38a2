package mnemonic

import (
	_ "embed"
	"io"
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/opfreq/internal"
)

//go:embed dispatch.tbl
var dispatchTbl string

// Table is an ordered mnemonic table, indexed by opcode.
type Table struct {
	Name  string   // Source of the table, for diagnostics.
	Names []string // Mnemonics, indexed by opcode.
}

// Default returns the built-in x86-64 dispatch table.
func Default() *Table {
	tab, err := Parse("dispatch.tbl", strings.NewReader(dispatchTbl))
	if err != nil {
		panic(err)
	}

	return tab
}

// Len returns the number of opcodes in the table.
func (tab *Table) Len() int {
	return len(tab.Names)
}

// Mnemonic returns the name of an opcode.
func (tab *Table) Mnemonic(op int) (name string, ok bool) {
	if op < 0 || op >= len(tab.Names) {
		return
	}

	return tab.Names[op], true
}

// All iterates over the table in opcode order.
func (tab *Table) All() iter.Seq2[int, string] {
	return slices.All(tab.Names)
}

var reMnemonic = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validName checks that a mnemonic is a plain identifier.
func validName(name string) error {
	if !reMnemonic.MatchString(name) {
		return ErrName(name)
	}

	return nil
}

// ParseSlot splits a dispatch table entry of the form
// `/*<hex>*/ Name,` into its slot tag and mnemonic.
// The slot is -1 when the entry has no tag.
func ParseSlot(entry string) (slot int, name string, err error) {
	slot = -1
	entry = strings.TrimSpace(entry)

	if rest, ok := strings.CutPrefix(entry, "/*"); ok {
		tag, tail, found := strings.Cut(rest, "*/")
		if !found {
			err = ErrName(entry)
			return
		}
		var s64 int64
		s64, err = strconv.ParseInt(strings.TrimSpace(tag), 16, 32)
		if err != nil {
			err = ErrName(entry)
			return
		}
		slot = int(s64)
		entry = strings.TrimSpace(tail)
	}

	name = strings.TrimSpace(strings.TrimSuffix(entry, ","))
	err = validName(name)

	return
}

// Parse reads a text table definition.
//
// Blank lines and '#' comments are ignored. Each remaining line is one
// entry, either a bare mnemonic or a dispatch table line such as
// `/*01F*/ OpPopSeg, // comment`. Slot tags, when present, must match the
// position of the entry.
func Parse(name string, r io.Reader) (tab *Table, err error) {
	tab = &Table{Name: name}

	lines, errf := internal.Lines(r)
	for lineno, line := range lines {
		text, _, _ := strings.Cut(line, "#")
		text, _, _ = strings.Cut(text, "//")
		if len(strings.TrimSpace(text)) == 0 {
			continue
		}

		slot, mnemonic, perr := ParseSlot(text)
		if perr == nil && slot >= 0 && slot != len(tab.Names) {
			perr = ErrSlot{Slot: slot, Want: len(tab.Names)}
		}
		if perr != nil {
			err = ErrSyntax{Name: name, LineNo: lineno, Line: line, Err: perr}
			return nil, err
		}

		tab.Names = append(tab.Names, mnemonic)
	}

	err = errf()
	if err != nil {
		return nil, err
	}

	if len(tab.Names) == 0 {
		return nil, ErrTableEmpty
	}

	return
}

// Open loads a table definition file. Files ending in '.star' are
// evaluated as Starlark, anything else is parsed as text.
func Open(path string) (tab *Table, err error) {
	if filepath.Ext(path) == ".star" {
		var src []byte
		src, err = os.ReadFile(path)
		if err != nil {
			return
		}
		return ParseStarlark(path, src)
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Parse(path, inf)
}
