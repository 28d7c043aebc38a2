package report

import (
	"fmt"
	"io"
	"math"

	"github.com/google/pprof/profile"

	"github.com/ezrec/opfreq/freq"
)

// Profile converts the report to a pprof profile.
//
// Every executed opcode becomes one sample, located at an address equal to
// its opcode number, in a function named by its mnemonic. Opcodes sharing a
// mnemonic share the function. Samples carry an "opcode" label (hex slot)
// and a "rank" numeric label.
func (rep *Report) Profile() (p *profile.Profile, err error) {
	p = &profile.Profile{
		SampleType: []*profile.ValueType{{Type: "executions", Unit: "count"}},
		PeriodType: &profile.ValueType{Type: "executions", Unit: "count"},
		Period:     1,
	}

	funcs := map[string]*profile.Function{}

	for op, name := range rep.Table.All() {
		count := rep.Counts.Count(op)
		if count == 0 {
			continue
		}
		if count > math.MaxInt64 {
			err = freq.ErrCountOverflow
			return
		}

		fn, ok := funcs[name]
		if !ok {
			fn = &profile.Function{
				ID:         uint64(len(p.Function) + 1),
				Name:       name,
				SystemName: name,
			}
			funcs[name] = fn
			p.Function = append(p.Function, fn)
		}

		loc := &profile.Location{
			ID:      uint64(len(p.Location) + 1),
			Address: uint64(op),
			Line:    []profile.Line{{Function: fn}},
		}
		p.Location = append(p.Location, loc)

		p.Sample = append(p.Sample, &profile.Sample{
			Location: []*profile.Location{loc},
			Value:    []int64{int64(count)},
			Label:    map[string][]string{"opcode": {fmt.Sprintf("%03X", op)}},
			NumLabel: map[string][]int64{"rank": {int64(rep.Ranking.Rank(op))}},
		})
	}

	err = p.CheckValid()
	if err != nil {
		return nil, err
	}

	return
}

// WriteProfile writes the report as a gzipped pprof profile.
func (rep *Report) WriteProfile(w io.Writer) (err error) {
	p, err := rep.Profile()
	if err != nil {
		return
	}

	return p.Write(w)
}
