package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/ntseq/ntseq/fasta"
	"github.com/ntseq/ntseq/nt"
	log "github.com/sirupsen/logrus"
)

type editor struct {
	op      string
	offset  int
	length  int
	count   int
	with    *nt.Seq
	policy  nt.LengthPolicy
	literal string
}

var editOps = map[string]bool{
	"complement":         false,
	"reverse-complement": false,
	"replicate":          false,
	"deletion":           false,
	"repeat":             false,
	"insertion":          true,
	"polymerize":         true,
	"mask":               true,
	"cover":              true,
}

func (cmd *editor) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := addConfigFlags(flags, "length-policy", "line-width")
	flags.StringVar(&cmd.op, "op", "", "edit `operation`: complement, reverse-complement, replicate, deletion, insertion, polymerize, repeat, mask, or cover")
	flags.IntVar(&cmd.offset, "offset", 0, "offset for replicate, deletion, insertion")
	flags.IntVar(&cmd.length, "length", nt.Rest, "length for replicate, deletion (-1 = to end)")
	flags.IntVar(&cmd.count, "count", 2, "number of copies for repeat")
	flags.StringVar(&cmd.literal, "seq", "", "use `sequence` text instead of reading a file")
	withFile := flags.String("with", "", "`file` holding the second operand of insertion, polymerize, mask, cover")
	withSeq := flags.String("with-seq", "", "second operand `sequence` text")
	outputFilename := flags.String("o", "-", "output `file`")
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
	binary, ok := editOps[cmd.op]
	if !ok {
		err = fmt.Errorf("unknown operation %q", cmd.op)
		return 2
	}
	if binary && *withFile == "" && *withSeq == "" {
		err = fmt.Errorf("%s requires -with or -with-seq", cmd.op)
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
	cmd.policy, err = cfg.Policy()
	if err != nil {
		return 2
	}

	if binary {
		if *withSeq == "" && *withFile == "-" && (flags.Arg(0) == "" || flags.Arg(0) == "-") && cmd.literal == "" {
			err = errors.New("cannot read both operands from stdin")
			return 2
		}
		var rec fasta.Record
		rec, err = readSequence(*withFile, *withSeq, stdin, kind)
		if err != nil {
			return 1
		}
		cmd.with = rec.Seq
	}
	records, err := readRecords(flags.Arg(0), cmd.literal, stdin, kind)
	if err != nil {
		return 1
	}
	for i, rec := range records {
		records[i].Seq, err = cmd.apply(rec.Seq)
		if err != nil {
			err = fmt.Errorf("%s: %s: %w", rec.Name, cmd.op, err)
			return 1
		}
		log.Debugf("%s: %s: length %d -> %d", rec.Name, cmd.op, rec.Seq.Len(), records[i].Seq.Len())
	}

	output, err := openOutput(*outputFilename, stdout)
	if err != nil {
		return 1
	}
	defer output.Close()
	if err = writeFasta(output, records, cfg.LineWidth); err != nil {
		return 1
	}
	if err = output.Close(); err != nil {
		return 1
	}
	return 0
}

func (cmd *editor) apply(seq *nt.Seq) (*nt.Seq, error) {
	switch cmd.op {
	case "complement":
		return seq.Complement(), nil
	case "reverse-complement":
		return seq.ReverseComplement(), nil
	case "replicate":
		return seq.Replicate(cmd.offset, cmd.length)
	case "deletion":
		length := cmd.length
		if length == nt.Rest {
			length = seq.Len()
		}
		return seq.Deletion(cmd.offset, length)
	case "insertion":
		return seq.Insertion(cmd.with, cmd.offset)
	case "polymerize":
		return seq.Polymerize(cmd.with), nil
	case "repeat":
		return seq.Repeat(cmd.count)
	case "mask":
		return seq.Mask(cmd.with, cmd.policy)
	case "cover":
		return seq.Cover(cmd.with, cmd.policy)
	default:
		return nil, fmt.Errorf("unknown operation %q", cmd.op)
	}
}
