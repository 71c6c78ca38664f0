package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/ntseq/ntseq/nt"
)

type content struct{}

func (cmd *content) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := addConfigFlags(flags)
	fractional := flags.Bool("fractional", false, "report fractions of sequence length instead of counts")
	atgc := flags.Bool("atgc", false, "spread ambiguity codes over the exact bases A, T, G, C")
	literal := flags.String("seq", "", "use `sequence` text instead of reading a file")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	} else if flags.NArg() > 1 {
		err = fmt.Errorf("usage: %s [options] [input.fasta]", prog)
		return 2
	}
	cfg, err := loadConfig(*configFile, flags)
	if err != nil {
		return 2
	}
	kind, err := cfg.SeqKind()
	if err != nil {
		return 2
	}

	records, err := readRecords(flags.Arg(0), *literal, stdin, kind)
	if err != nil {
		return 1
	}
	bufw := bufio.NewWriter(stdout)
	for _, rec := range records {
		var keys []string
		var values map[string]float64
		switch {
		case *atgc && *fractional:
			keys, values = atgcKeys, rec.Seq.FractionalContentATGC()
		case *atgc:
			keys, values = atgcKeys, rec.Seq.ContentATGC()
		case *fractional:
			keys, values = symbolKeys(rec.Seq.Kind()), rec.Seq.FractionalContent()
		default:
			keys, values = symbolKeys(rec.Seq.Kind()), map[string]float64{}
			for k, n := range rec.Seq.Content() {
				values[k] = float64(n)
			}
		}
		for _, k := range keys {
			v, ok := values[k]
			if !ok {
				continue
			}
			fmt.Fprintf(bufw, "%s\t%s\t%s\n", rec.Name, k, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	if err = bufw.Flush(); err != nil {
		return 1
	}
	return 0
}

var atgcKeys = []string{"A", "T", "G", "C"}

// symbolKeys returns the text form of every symbol, exact bases first.
func symbolKeys(kind nt.Kind) []string {
	keys := make([]string, 0, nt.NumSymbols)
	for _, sym := range []nt.Symbol{nt.A, nt.C, nt.G, nt.T} {
		keys = append(keys, string(sym.Letter(kind)))
	}
	for sym := nt.Symbol(0); sym < nt.NumSymbols; sym++ {
		if !sym.IsExact() {
			keys = append(keys, string(sym.Letter(kind)))
		}
	}
	return keys
}
