// Package mnemonic loads opcode mnemonic tables.
//
// A mnemonic table is the ordered list of operation names of an instruction
// decoder's dispatch table: the name at position N is the mnemonic of opcode
// N, and the table length defines the valid opcode range. Tables are loaded
// from generated definition files, either plain text or Starlark, so that the
// reporting tools do not need rebuilding when the instruction set changes.
package mnemonic
