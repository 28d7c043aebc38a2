package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/pprof/profile"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/opfreq/freq"
	"github.com/ezrec/opfreq/mnemonic"
)

func TestWriteProfile(t *testing.T) {
	assert := assert.New(t)

	tab := &mnemonic.Table{Names: []string{"OpA", "OpUd", "OpB", "OpUd"}}
	cnt := freq.NewCounts(tab.Len())
	assert.NoError(cnt.Parse("a.log", strings.NewReader("10 0\n4 1\n6 3\n")))

	rep, err := New(tab, cnt, Options{})
	assert.NoError(err)

	var buf bytes.Buffer
	assert.NoError(rep.WriteProfile(&buf))

	p, err := profile.Parse(&buf)
	assert.NoError(err)
	if err != nil {
		return
	}

	assert.Equal("executions", p.SampleType[0].Type)
	assert.Equal("count", p.SampleType[0].Unit)
	assert.Equal(3, len(p.Sample))
	assert.Equal(3, len(p.Location))
	assert.Equal(2, len(p.Function))

	total := int64(0)
	for _, s := range p.Sample {
		total += s.Value[0]
	}
	assert.Equal(int64(cnt.Total()), total)

	s := p.Sample[2]
	assert.Equal(int64(6), s.Value[0])
	assert.Equal([]string{"003"}, s.Label["opcode"])
	assert.Equal([]int64{2}, s.NumLabel["rank"])
	assert.Equal(uint64(3), s.Location[0].Address)
	assert.Equal("OpUd", s.Location[0].Line[0].Function.Name)
}

func TestProfile_Empty(t *testing.T) {
	assert := assert.New(t)

	tab := &mnemonic.Table{Names: []string{"OpA"}}
	rep, err := New(tab, freq.NewCounts(1), Options{})
	assert.NoError(err)

	p, err := rep.Profile()
	assert.NoError(err)
	assert.Equal(0, len(p.Sample))
}
