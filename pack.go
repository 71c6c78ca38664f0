package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"

	"github.com/dustin/go-humanize"
	"github.com/ntseq/ntseq/fasta"
	"github.com/ntseq/ntseq/fourbit"
	log "github.com/sirupsen/logrus"
)

type packer struct{}

func (cmd *packer) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := addConfigFlags(flags)
	outputFilename := flags.String("o", "-", "output `file`")
	pprof := flags.String("pprof", "", "serve Go profile data at http://`[addr]:port`")
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

	if *pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprof, nil))
		}()
	}

	records, err := readSequences(flags.Arg(0), stdin, kind)
	if err != nil {
		return 1
	}
	output, err := openOutput(*outputFilename, stdout)
	if err != nil {
		return 1
	}
	defer output.Close()
	bufw := bufio.NewWriter(output)
	size := 0
	for _, rec := range records {
		err = fourbit.Write(bufw, rec.Seq)
		if err != nil {
			return 1
		}
		size += fourbit.HeaderSize + fourbit.BodySize(rec.Seq.Len())
	}
	if err = bufw.Flush(); err != nil {
		return 1
	}
	if err = output.Close(); err != nil {
		return 1
	}
	log.Infof("packed %d records into %s", len(records), humanize.Bytes(uint64(size)))
	return 0
}

type unpacker struct{}

func (cmd *unpacker) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := addConfigFlags(flags, "line-width")
	outputFilename := flags.String("o", "-", "output `file`")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	} else if flags.NArg() > 1 {
		err = fmt.Errorf("usage: %s [options] [input.4bnt]", prog)
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

	records, err := readSequences(flags.Arg(0), stdin, kind)
	if err != nil {
		return 1
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

func writeFasta(w io.Writer, records []fasta.Record, width int) error {
	bufw := bufio.NewWriter(w)
	for _, rec := range records {
		if err := fasta.Write(bufw, rec, width); err != nil {
			return err
		}
	}
	return bufw.Flush()
}
