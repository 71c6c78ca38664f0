package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"

	"github.com/dustin/go-humanize"
	"github.com/ntseq/ntseq/fasta"
	"github.com/ntseq/ntseq/fourbit"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
)

type info struct{}

func (cmd *info) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := addConfigFlags(flags)
	pprof := flags.String("pprof", "", "serve Go profile data at http://`[addr]:port`")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
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

	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	bufw := bufio.NewWriter(stdout)
	nrecords, nsymbols := 0, 0
	for _, path := range inputs {
		var records []fasta.Record
		records, err = readSequences(path, stdin, kind)
		if err != nil {
			return 1
		}
		for _, rec := range records {
			var sum [blake2b.Size256]byte
			sum, err = fourbit.Sum(rec.Seq)
			if err != nil {
				return 1
			}
			fmt.Fprintf(bufw, "%s\t%s\t%d\t%s\n", rec.Name, rec.Seq.Kind(), rec.Seq.Len(), hex.EncodeToString(sum[:]))
			nrecords++
			nsymbols += rec.Seq.Len()
		}
	}
	log.Infof("%d records, %s symbols", nrecords, humanize.Comma(int64(nsymbols)))
	if err = bufw.Flush(); err != nil {
		return 1
	}
	return 0
}
