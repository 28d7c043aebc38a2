package freq

import (
	"cmp"
	"slices"
)

// Ranking maps each opcode to its 1-based position when all opcodes are
// ordered by descending count.
type Ranking struct {
	Tie TieBreak // Tie break used to order equal counts.

	order []int // Opcodes, in rank order.
	rank  []int // Rank, indexed by opcode.
}

// Rank orders every opcode in the table by descending count, breaking ties
// by opcode according to tie. Every opcode gets a distinct rank in [1, Len()],
// including those with no executions.
func (cnt *Counts) Rank(tie TieBreak) *Ranking {
	rk := &Ranking{
		Tie:   tie,
		order: make([]int, len(cnt.counts)),
		rank:  make([]int, len(cnt.counts)),
	}

	for op := range rk.order {
		rk.order[op] = op
	}

	slices.SortStableFunc(rk.order, func(a, b int) int {
		rc := cmp.Compare(cnt.counts[b], cnt.counts[a])
		if rc != 0 {
			return rc
		}
		if tie == TIE_DESCENDING {
			return cmp.Compare(b, a)
		}
		return cmp.Compare(a, b)
	})

	for n, op := range rk.order {
		rk.rank[op] = n + 1
	}

	return rk
}

// Rank returns the 1-based rank of an opcode, or 0 if out of range.
func (rk *Ranking) Rank(op int) int {
	if op < 0 || op >= len(rk.rank) {
		return 0
	}

	return rk.rank[op]
}

// Order returns the opcodes from rank 1 downwards.
func (rk *Ranking) Order() []int {
	return slices.Clone(rk.order)
}
