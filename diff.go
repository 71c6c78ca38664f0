package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"

	"github.com/ntseq/ntseq/fasta"
	"github.com/ntseq/ntseq/hgvs"
	log "github.com/sirupsen/logrus"
)

type diffFasta struct{}

func (cmd *diffFasta) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := addConfigFlags(flags)
	offset := flags.Int("offset", 0, "coordinate offset")
	sequence := flags.String("sequence", "", "sequence label (default: name of the first record in a.fasta)")
	timeout := flags.Duration("timeout", 0, "timeout (examples: \"1s\", \"1ms\")")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	}
	if len(flags.Args()) != 2 {
		err = fmt.Errorf("usage: %s [options] a.fasta b.fasta", prog)
		return 2
	} else if flags.Arg(0) == "-" && flags.Arg(1) == "-" {
		err = fmt.Errorf("cannot read both a.fasta and b.fasta from stdin")
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

	var recs [2]fasta.Record
	errs := make(chan error, 2)
	for idx, fnm := range flags.Args() {
		idx, fnm := idx, fnm
		go func() {
			var err error
			recs[idx], err = readSequence(fnm, "", stdin, kind)
			errs <- err
		}()
	}
	for range flags.Args() {
		if e := <-errs; e != nil && err == nil {
			err = e
		}
	}
	if err != nil {
		return 1
	}

	label := *sequence
	if label == "" {
		label = recs[0].Name
	}
	variants := hgvs.Diff(recs[0].Seq, recs[1].Seq, *timeout)
	log.Debugf("%d variants between %s and %s", len(variants), recs[0].Name, recs[1].Name)
	bufw := bufio.NewWriter(stdout)
	for _, v := range variants {
		v.Position += *offset
		fmt.Fprintf(bufw, "%s:g.%s\t%s\t%d\t%s\t%s", label, v.String(), label, v.Position, v.Ref, v.New)
		if v.Compatible {
			fmt.Fprint(bufw, "\tcompatible")
		}
		fmt.Fprint(bufw, "\n")
	}
	if err = bufw.Flush(); err != nil {
		return 1
	}
	return 0
}
