package freq

import (
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/opfreq/internal"
)

// Counts is the per-opcode execution count table.
type Counts struct {
	Verbose bool // If set, logs each file as it is read.

	counts []uint64
	total  uint64
}

// NewCounts creates a zeroed count table for opcodes [0, size).
func NewCounts(size int) *Counts {
	return &Counts{
		counts: make([]uint64, size),
	}
}

// Len returns the number of opcodes in the table.
func (cnt *Counts) Len() int {
	return len(cnt.counts)
}

// Count returns the accumulated count of an opcode, or 0 if out of range.
func (cnt *Counts) Count(op int) uint64 {
	if op < 0 || op >= len(cnt.counts) {
		return 0
	}

	return cnt.counts[op]
}

// Total returns the sum of all counts.
func (cnt *Counts) Total() uint64 {
	return cnt.total
}

// Percent returns the share of the total for an opcode, in percent.
// An empty table has no share to give, and returns 0.
func (cnt *Counts) Percent(op int) float64 {
	if cnt.total == 0 {
		return 0
	}

	return float64(cnt.Count(op)) / float64(cnt.total) * 100
}

// Add accumulates count executions of op.
func (cnt *Counts) Add(op int64, count uint64) error {
	if op < 0 || op >= int64(len(cnt.counts)) {
		return ErrOpcodeRange{Opcode: op, Size: len(cnt.counts)}
	}

	if count > math.MaxUint64-cnt.total {
		return ErrCountOverflow
	}

	cnt.counts[op] += count
	cnt.total += count

	return nil
}

// parseRecord parses a single '<count> <opcode>' record.
func parseRecord(line string) (count uint64, op int64, err error) {
	words := strings.Fields(line)
	if len(words) != 2 {
		err = ErrFieldCount
		return
	}

	c64, err := strconv.ParseInt(words[0], 10, 64)
	if err != nil {
		err = ErrParseNumber(words[0])
		return
	}
	if c64 < 0 {
		err = ErrCountNegative
		return
	}

	op, err = strconv.ParseInt(words[1], 10, 64)
	if err != nil {
		err = ErrParseNumber(words[1])
		return
	}

	count = uint64(c64)
	return
}

// Parse accumulates all records from r. name is used for diagnostics.
//
// Parsing stops at the first malformed record. Records before it have
// already been accumulated.
func (cnt *Counts) Parse(name string, r io.Reader) (err error) {
	records := 0

	lines, errf := internal.Lines(r)
	for lineno, line := range lines {
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}

		count, op, perr := parseRecord(line)
		if perr == nil {
			perr = cnt.Add(op, count)
		}
		if perr != nil {
			return ErrSyntax{Name: name, LineNo: lineno, Line: line, Err: perr}
		}

		records++
	}

	err = errf()
	if err != nil {
		return
	}

	if cnt.Verbose {
		log.Printf("%v: %d records", name, records)
	}

	return
}

// ReadFile accumulates all records from the named file.
func (cnt *Counts) ReadFile(path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return cnt.Parse(path, inf)
}
