// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/tebeka/atexit"

	"github.com/ezrec/opfreq/freq"
	"github.com/ezrec/opfreq/mnemonic"
	"github.com/ezrec/opfreq/report"
	"github.com/ezrec/opfreq/translate"
)

// hot is a verbose mode summary entry.
type hot struct {
	Rank     int
	Opcode   int
	Mnemonic string
	Count    uint64
}

func main() {
	var table string
	var output string
	var annotate string
	var pprof string
	var ties string
	var lang string
	var width int
	var strict bool
	var verbose bool

	flag.StringVar(&table, "t", "", "Mnemonic table (.tbl or .star), default built-in")
	flag.StringVar(&output, "o", "-", "Report output")
	flag.StringVar(&annotate, "w", "", "Dispatch table source to annotate in place")
	flag.StringVar(&pprof, "p", "", "pprof profile output")
	flag.StringVar(&ties, "ties", freq.TIE_ASCENDING.String(), "Tie break for equal counts (asc, desc)")
	flag.StringVar(&lang, "lang", "", "Message language, default from locale")
	flag.IntVar(&width, "width", report.DefaultWidth, "Mnemonic field width")
	flag.BoolVar(&strict, "strict", false, "Fail if no executions were counted")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			atexit.Fatalf("%v: -lang %v: %v", os.Args[0], lang, err)
		}
	}

	tie, err := freq.ParseTieBreak(ties)
	if err != nil {
		atexit.Fatalf("%v: -ties %v: %v", os.Args[0], ties, err)
	}

	tab := mnemonic.Default()
	if len(table) != 0 {
		tab, err = mnemonic.Open(table)
		if err != nil {
			atexit.Fatalf("%v: %v", table, err)
		}
	}

	cnt := freq.NewCounts(tab.Len())
	cnt.Verbose = verbose

	for _, path := range flag.Args() {
		err = cnt.ReadFile(path)
		if err != nil {
			atexit.Fatal(err)
		}
	}

	rep, err := report.New(tab, cnt, report.Options{
		Width:       width,
		Tie:         tie,
		RequireData: strict,
	})
	if err != nil {
		atexit.Fatal(err)
	}

	if verbose {
		log.Printf("%v: %d opcodes, %d executions", tab.Name, tab.Len(), cnt.Total())
		var top []hot
		for _, op := range rep.Ranking.Order() {
			if len(top) == 10 || cnt.Count(op) == 0 {
				break
			}
			name, _ := tab.Mnemonic(op)
			top = append(top, hot{Rank: len(top) + 1, Opcode: op, Mnemonic: name, Count: cnt.Count(op)})
		}
		spew.Fdump(os.Stderr, top)
	}

	if len(annotate) != 0 {
		src, err := os.ReadFile(annotate)
		if err != nil {
			atexit.Fatal(err)
		}
		var dst bytes.Buffer
		err = rep.Annotate(bytes.NewReader(src), &dst)
		if err != nil {
			atexit.Fatalf("%v: %v", annotate, err)
		}
		info, err := os.Stat(annotate)
		if err != nil {
			atexit.Fatal(err)
		}
		err = os.WriteFile(annotate, dst.Bytes(), info.Mode().Perm())
		if err != nil {
			atexit.Fatal(err)
		}
	}

	if len(pprof) != 0 {
		ouf, err := os.Create(pprof)
		if err != nil {
			atexit.Fatal(err)
		}
		atexit.Register(func() { ouf.Close() })
		err = rep.WriteProfile(ouf)
		if err != nil {
			atexit.Fatalf("%v: %v", pprof, err)
		}
	}

	if output == "-" {
		err = rep.Render(os.Stdout)
	} else {
		var ouf *os.File
		ouf, err = os.Create(output)
		if err != nil {
			atexit.Fatal(err)
		}
		atexit.Register(func() { ouf.Close() })
		err = rep.Render(ouf)
	}
	if err != nil {
		atexit.Fatalf("%v: %v", output, err)
	}

	atexit.Exit(0)
}
