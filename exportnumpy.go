package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"

	"github.com/kshedden/gonpy"
	log "github.com/sirupsen/logrus"
)

type exportNumpy struct {
	output io.Writer
}

func (cmd *exportNumpy) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	pprof := flags.String("pprof", "", "serve Go profile data at http://`[addr]:port`")
	inputFilename := flags.String("i", "-", "input `file` written by map -o")
	outputFilename := flags.String("o", "-", "output `file`")
	what := flags.String("what", "profile", "matrix to export: profile or histogram")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	} else if *what != "profile" && *what != "histogram" {
		err = fmt.Errorf("invalid -what %q: must be profile or histogram", *what)
		return 2
	}
	cmd.output = stdout

	if *pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprof, nil))
		}()
	}

	input, err := openInput(*inputFilename, stdin)
	if err != nil {
		return 1
	}
	defer input.Close()
	results, err := ReadMapResults(input)
	if err != nil {
		return 1
	}
	cols := 0
	for _, r := range results {
		n := len(r.Profile)
		if *what == "histogram" {
			n = len(r.Histogram)
		}
		if cols < n {
			cols = n
		}
	}
	rows := len(results)
	log.Infof("exporting %s matrix, %d rows x %d columns", *what, rows, cols)

	output, err := openOutput(*outputFilename, cmd.output)
	if err != nil {
		return 1
	}
	defer output.Close()
	bufw := bufio.NewWriter(output)
	npw, err := gonpy.NewWriter(nopCloser{bufw})
	if err != nil {
		return 1
	}
	npw.Shape = []int{rows, cols}
	if *what == "histogram" {
		out := make([]uint64, rows*cols)
		for row, r := range results {
			copy(out[row*cols:], r.Histogram)
		}
		err = npw.WriteUint64(out)
	} else {
		// rows are zero-padded on the right when targets differ in
		// length
		out := make([]uint32, rows*cols)
		for row, r := range results {
			copy(out[row*cols:], r.Profile)
		}
		err = npw.WriteUint32(out)
	}
	if err != nil {
		return 1
	}
	err = bufw.Flush()
	if err != nil {
		return 1
	}
	err = output.Close()
	if err != nil {
		return 1
	}
	return 0
}
