// Package report renders ranked opcode frequency listings.
//
// Each opcode of the mnemonic table gets one line, in table order:
//
//	OpAluw                                   // #8    (5.653689%)
//	OpAlubAdd                                //
//
// Executed opcodes are annotated with their rank and share of all
// executions. The annotation is a C comment, so the same text can be merged
// back into a decoder's dispatch table source (see Annotate).
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ezrec/opfreq/freq"
	"github.com/ezrec/opfreq/mnemonic"
)

// DefaultWidth is the default mnemonic field width.
const DefaultWidth = 40

// Options controls report construction.
type Options struct {
	Width       int           // Mnemonic field width. DefaultWidth if zero.
	Tie         freq.TieBreak // Order of opcodes with equal counts.
	RequireData bool          // If set, an empty count table is ErrNoData.
}

// Report is a ranked frequency report of a count table.
type Report struct {
	Table   *mnemonic.Table
	Counts  *freq.Counts
	Ranking *freq.Ranking
	Width   int
}

// New ranks the counts and prepares a report.
func New(tab *mnemonic.Table, cnt *freq.Counts, opts Options) (rep *Report, err error) {
	if cnt.Len() != tab.Len() {
		err = ErrTableSize{Table: tab.Len(), Counts: cnt.Len()}
		return
	}

	if opts.RequireData && cnt.Total() == 0 {
		err = ErrNoData
		return
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	rep = &Report{
		Table:   tab,
		Counts:  cnt,
		Ranking: cnt.Rank(opts.Tie),
		Width:   width,
	}

	return
}

// Annotation returns the trailing comment for an opcode.
func (rep *Report) Annotation(op int) string {
	if rep.Counts.Count(op) == 0 {
		return "//"
	}

	return fmt.Sprintf("// #%-4d (%.6f%%)", rep.Ranking.Rank(op), rep.Counts.Percent(op))
}

// Line returns the report line for an opcode.
func (rep *Report) Line(op int) string {
	name, _ := rep.Table.Mnemonic(op)
	return fmt.Sprintf("%-*s %s", rep.Width, name, rep.Annotation(op))
}

// Render writes one line per opcode of the table, in table order.
func (rep *Report) Render(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)

	for op := range rep.Table.Len() {
		_, err = fmt.Fprintln(bw, rep.Line(op))
		if err != nil {
			return
		}
	}

	return bw.Flush()
}
