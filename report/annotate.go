package report

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/ezrec/opfreq/internal"
	"github.com/ezrec/opfreq/mnemonic"
)

// reEntry matches a slot tagged dispatch table entry, up to its comma.
var reEntry = regexp.MustCompile(`^\s*/\*\s*[0-9A-Fa-f]+\s*\*/\s*[A-Za-z_][A-Za-z0-9_]*\s*,`)

// Annotate copies a decoder source file from r to w, replacing the trailing
// comment of every slot tagged dispatch table entry, such as
//
//	/*1F1*/ OpSsePsllwv,  // #226  (0.000006%)
//
// with the annotation for that slot. Comments are aligned one column past
// the longest entry. All other lines are copied unchanged. Line endings are
// written as '\n'.
func (rep *Report) Annotate(r io.Reader, w io.Writer) (err error) {
	type entry struct {
		prefix string
		op     int
	}

	var text []string
	entries := map[int]entry{}
	width := 0

	lines, errf := internal.Lines(r)
	for lineno, line := range lines {
		text = append(text, line)

		prefix := reEntry.FindString(line)
		if len(prefix) == 0 {
			continue
		}

		slot, name, _ := mnemonic.ParseSlot(prefix)
		want, ok := rep.Table.Mnemonic(slot)
		switch {
		case !ok:
			err = ErrSlotRange
		case want != name:
			err = ErrNameMismatch
		}
		if err != nil {
			return ErrAnnotate{LineNo: lineno, Slot: slot, Name: name, Err: err}
		}

		entries[len(text)-1] = entry{prefix: prefix, op: slot}
		width = max(width, len(prefix)+1)
	}

	err = errf()
	if err != nil {
		return
	}

	bw := bufio.NewWriter(w)
	for n, line := range text {
		if ent, ok := entries[n]; ok {
			line = fmt.Sprintf("%-*s %s", width, ent.prefix, rep.Annotation(ent.op))
		}
		_, err = fmt.Fprintln(bw, line)
		if err != nil {
			return
		}
	}

	return bw.Flush()
}
