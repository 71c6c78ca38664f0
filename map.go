package main

import (
	"bufio"
	"compress/gzip"
	"encoding/gob"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ntseq/ntseq/fasta"
	"github.com/ntseq/ntseq/fourbit"
	"github.com/ntseq/ntseq/matchmap"
	log "github.com/sirupsen/logrus"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type mapper struct {
	targetFile     string
	queryFile      string
	queryText      string
	outputFilename string
	top            int
	progress       bool
	encoder        *gob.Encoder
}

func (cmd *mapper) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := addConfigFlags(flags, "workers")
	flags.StringVar(&cmd.targetFile, "target", "", "target fasta or 4bnt `file`")
	flags.StringVar(&cmd.queryFile, "query-file", "", "query fasta or 4bnt `file` (first record is used)")
	flags.StringVar(&cmd.queryText, "query", "", "query `sequence` text")
	flags.StringVar(&cmd.outputFilename, "o", "", "write gob-encoded profiles to `file` (gzipped if name ends in .gz)")
	flags.IntVar(&cmd.top, "top", 1, "report the `n` best shifts per target")
	flags.BoolVar(&cmd.progress, "progress", false, "show progress bars on stderr")
	pprof := flags.String("pprof", "", "serve Go profile data at http://`[addr]:port`")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	} else if cmd.targetFile == "" {
		err = errors.New("target (-target) not specified")
		return 2
	} else if (cmd.queryFile == "") == (cmd.queryText == "") {
		err = errors.New("exactly one of -query and -query-file must be specified")
		return 2
	} else if cmd.queryFile == "-" && cmd.targetFile == "-" {
		err = errors.New("cannot read both query and target from stdin")
		return 2
	} else if cmd.outputFilename == "-" {
		err = errors.New("cannot write profiles to stdout (-o -): stdout is used for the report")
		return 2
	} else if flags.NArg() > 0 {
		err = fmt.Errorf("usage: %s [options] -target file (-query seq | -query-file file)", prog)
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

	query, err := readSequence(cmd.queryFile, cmd.queryText, stdin, kind)
	if err != nil {
		return 1
	}
	targets, err := readSequences(cmd.targetFile, stdin, kind)
	if err != nil {
		return 1
	}
	querySum, err := fourbit.Sum(query.Seq)
	if err != nil {
		return 1
	}

	var output io.WriteCloser
	var bufw *bufio.Writer
	var gzw *gzip.Writer
	if cmd.outputFilename != "" {
		output, err = openOutput(cmd.outputFilename, stdout)
		if err != nil {
			return 1
		}
		defer output.Close()
		bufw = bufio.NewWriter(output)
		if strings.HasSuffix(cmd.outputFilename, ".gz") {
			gzw = gzip.NewWriter(bufw)
			cmd.encoder = gob.NewEncoder(gzw)
		} else {
			cmd.encoder = gob.NewEncoder(bufw)
		}
	}

	var pbs *mpb.Progress
	if cmd.progress {
		pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(stderr))
	}
	report := bufio.NewWriter(stdout)
	for _, target := range targets {
		err = cmd.mapTarget(report, pbs, query, target, querySum, cfg.Workers)
		if err != nil {
			if pbs != nil {
				pbs.Wait()
			}
			return 1
		}
	}
	if pbs != nil {
		pbs.Wait()
	}
	if err = report.Flush(); err != nil {
		return 1
	}
	if gzw != nil {
		if err = gzw.Close(); err != nil {
			return 1
		}
	}
	if bufw != nil {
		if err = bufw.Flush(); err != nil {
			return 1
		}
		if err = output.Close(); err != nil {
			return 1
		}
	}
	return 0
}

func (cmd *mapper) mapTarget(report io.Writer, pbs *mpb.Progress, query, target fasta.Record, querySum [32]byte, workers int) error {
	opts := matchmap.Options{Workers: workers}
	var bar *mpb.Bar
	if pbs != nil {
		label := target.Name + ": "
		bar = pbs.AddBar(0,
			mpb.PrependDecorators(
				decor.Name(label, decor.WC{W: len(label), C: decor.DindentRight}),
				decor.Percentage(decor.WCSyncSpace),
			),
			mpb.AppendDecorators(
				decor.Elapsed(decor.ET_STYLE_GO),
				decor.OnComplete(decor.Name(""), ". done"),
			),
		)
		var once sync.Once
		opts.Progress = func(delta, total int) {
			once.Do(func() { bar.SetTotal(int64(total), false) })
			bar.IncrBy(delta)
		}
	}
	t0 := time.Now()
	m, err := matchmap.New(query.Seq, target.Seq, opts)
	if bar != nil {
		if err != nil {
			bar.Abort(false)
		} else {
			bar.SetTotal(-1, true)
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", target.Name, err)
	}
	elapsed := time.Since(t0)
	best := m.Best()
	log.Infof("%s: %s x %s symbols, best position %d with %d matches (%v)", target.Name, humanize.Comma(int64(query.Seq.Len())), humanize.Comma(int64(target.Seq.Len())), best.Position, best.Matches, elapsed)
	stats := m.Stats()
	log.Debugf("%s: prepare %v search %v", target.Name, stats.PrepareTime, stats.SearchTime)

	matches := []matchmap.Match{best}
	if cmd.top != 1 {
		matches = m.Top(cmd.top)
		log.Debugf("%s: ranked in %v", target.Name, m.Stats().RankTime)
	}
	for _, match := range matches {
		fmt.Fprintf(report, "%s\t%s\t%d\t%d\n", query.Name, target.Name, match.Position, match.Matches)
	}

	if cmd.encoder == nil {
		return nil
	}
	targetSum, err := fourbit.Sum(target.Seq)
	if err != nil {
		return err
	}
	return cmd.encoder.Encode(MapResult{
		Query:        query.Name,
		Target:       target.Name,
		QueryDigest:  querySum,
		TargetDigest: targetSum,
		QueryLen:     m.QueryLen(),
		TargetLen:    m.TargetLen(),
		Best:         best,
		Profile:      m.Profile(),
		Histogram:    m.Histogram(),
	})
}
