package freq

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	assert := assert.New(t)

	cnt := NewCounts(3)
	assert.NoError(cnt.Parse("a.log", strings.NewReader("10 0\n5 1\n")))

	rk := cnt.Rank(TIE_ASCENDING)
	assert.Equal(1, rk.Rank(0))
	assert.Equal(2, rk.Rank(1))
	assert.Equal(3, rk.Rank(2))
	assert.Equal(0, rk.Rank(3))
	assert.Equal([]int{0, 1, 2}, rk.Order())
}

func TestRank_Ties(t *testing.T) {
	table := [](struct {
		name  string
		tie   TieBreak
		order []int
	}){
		{"asc", TIE_ASCENDING, []int{2, 1, 4, 0, 3, 5}},
		{"desc", TIE_DESCENDING, []int{2, 4, 1, 5, 3, 0}},
	}

	for _, entry := range table {
		assert := assert.New(t)

		cnt := NewCounts(6)
		assert.NoError(cnt.Add(1, 7))
		assert.NoError(cnt.Add(2, 9))
		assert.NoError(cnt.Add(4, 7))

		rk := cnt.Rank(entry.tie)
		assert.Equal(entry.tie, rk.Tie, entry.name)
		assert.Equal(entry.order, rk.Order(), entry.name)
		assert.Equal(1, rk.Rank(2), entry.name)
	}
}

func TestRank_Bijection(t *testing.T) {
	assert := assert.New(t)

	cnt := NewCounts(64)
	for op := range int64(64) {
		assert.NoError(cnt.Add(op, uint64((op*37)%11)))
	}

	for _, tie := range []TieBreak{TIE_ASCENDING, TIE_DESCENDING} {
		rk := cnt.Rank(tie)

		var ranks []int
		for op := range 64 {
			ranks = append(ranks, rk.Rank(op))
		}
		slices.Sort(ranks)
		for n, rank := range ranks {
			assert.Equal(n+1, rank)
		}

		// Rank order never increases in count.
		order := rk.Order()
		for n := 1; n < len(order); n++ {
			assert.GreaterOrEqual(cnt.Count(order[n-1]), cnt.Count(order[n]))
		}
	}
}

func TestRank_ScaleInvariant(t *testing.T) {
	assert := assert.New(t)

	input := "10 0\n5 1\n7 3\n5 2\n"

	once := NewCounts(4)
	assert.NoError(once.Parse("once", strings.NewReader(input)))

	twice := NewCounts(4)
	assert.NoError(twice.Parse("twice", strings.NewReader(input)))
	assert.NoError(twice.Parse("twice", strings.NewReader(input)))

	assert.Equal(2*once.Total(), twice.Total())
	assert.Equal(once.Rank(TIE_ASCENDING).Order(), twice.Rank(TIE_ASCENDING).Order())
	for op := range 4 {
		assert.InDelta(once.Percent(op), twice.Percent(op), 1e-9)
	}
}

func TestParseTieBreak(t *testing.T) {
	assert := assert.New(t)

	tie, err := ParseTieBreak("asc")
	assert.NoError(err)
	assert.Equal(TIE_ASCENDING, tie)

	tie, err = ParseTieBreak("desc")
	assert.NoError(err)
	assert.Equal(TIE_DESCENDING, tie)

	_, err = ParseTieBreak("random")
	assert.ErrorIs(err, ErrTieBreak)

	assert.Equal("TieBreak(9)", TieBreak(9).String())
}
