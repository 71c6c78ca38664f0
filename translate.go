package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"

	"github.com/ntseq/ntseq/nt"
)

type translator struct{}

func (cmd *translator) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := addConfigFlags(flags)
	offset := flags.Int("offset", 0, "first nucleotide to translate")
	length := flags.Int("length", nt.Rest, "number of nucleotides to translate (-1 = to end)")
	frame := flags.Int("frame", -1, "reading `frame` 0, 1 or 2 (overrides -offset and -length)")
	aaOffset := flags.Int("aa-offset", 0, "first amino acid to report, with -frame")
	aaLength := flags.Int("aa-length", nt.Rest, "number of amino acids to report, with -frame (-1 = to end)")
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
		var protein string
		if *frame >= 0 {
			protein, err = rec.Seq.TranslateFrame(*frame, *aaOffset, *aaLength)
		} else {
			protein, err = rec.Seq.Translate(*offset, *length)
		}
		if err != nil {
			err = fmt.Errorf("%s: %w", rec.Name, err)
			return 1
		}
		fmt.Fprintf(bufw, "%s\t%s\n", rec.Name, protein)
	}
	if err = bufw.Flush(); err != nil {
		return 1
	}
	return 0
}
