package main

import (
	"bufio"
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ntseq/ntseq/config"
	"github.com/ntseq/ntseq/fasta"
	"github.com/ntseq/ntseq/fourbit"
	"github.com/ntseq/ntseq/nt"
	log "github.com/sirupsen/logrus"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

var configFlagUsage = map[string]string{
	"kind":          "sequence `kind` of text input (dna or rna)",
	"length-policy": "mask/cover on different lengths: strict or truncate",
	"workers":       "match-mapping goroutines (0 = one per CPU)",
	"line-width":    "FASTA output line width",
	"log-level":     "log `level` (trace, debug, info, warn, error)",
}

// addConfigFlags registers -config plus a flag for each named config
// key. Flags given on the command line override the config file and
// environment; see loadConfig.
func addConfigFlags(flags *flag.FlagSet, keys ...string) *string {
	path := flags.String("config", "", "config `file` (yaml, json, or toml)")
	for _, key := range append([]string{"kind", "log-level"}, keys...) {
		switch key {
		case "workers", "line-width":
			flags.Int(key, 0, configFlagUsage[key])
		default:
			flags.String(key, "", configFlagUsage[key])
		}
	}
	return path
}

func loadConfig(path string, flags *flag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(path, flags)
	if err != nil {
		return cfg, err
	}
	level, err := cfg.Level()
	if err != nil {
		return cfg, err
	}
	log.SetLevel(level)
	return cfg, nil
}

// openInput returns a reader for the named file ("-" or "" means
// stdin), gunzipping if needed.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path != "" && path != "-" {
		return fasta.Open(path)
	}
	bufr := bufio.NewReader(stdin)
	if sig, _ := bufr.Peek(2); len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		return gzip.NewReader(bufr)
	}
	return io.NopCloser(bufr), nil
}

// readSequences reads all records from a FASTA or packed (4bnt) file.
// Packed records have no names, so they are called seq1, seq2, ...
// and carry their own kind.
func readSequences(path string, stdin io.Reader, kind nt.Kind) ([]fasta.Record, error) {
	rdr, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	bufr := bufio.NewReader(rdr)
	if sig, err := bufr.Peek(1); err == nil && (sig[0] == byte(nt.DNA) || sig[0] == byte(nt.RNA)) {
		var records []fasta.Record
		for {
			if _, err := bufr.Peek(1); err == io.EOF {
				return records, nil
			}
			seq, err := fourbit.Read(bufr)
			if err != nil {
				return nil, fmt.Errorf("%s: record %d: %w", path, len(records)+1, err)
			}
			records = append(records, fasta.Record{Name: fmt.Sprintf("seq%d", len(records)+1), Seq: seq})
		}
	}
	records, err := fasta.Read(bufr, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, rec := range records {
		log.Tracef("%s: %q length %d", path, rec.Name, rec.Seq.Len())
	}
	return records, nil
}

// readRecords is readSequences, unless literal is non-empty, in which
// case it returns a single record named "seq" holding literal text.
func readRecords(path, literal string, stdin io.Reader, kind nt.Kind) ([]fasta.Record, error) {
	if literal == "" {
		return readSequences(path, stdin, kind)
	}
	seq, err := nt.Read(literal, kind)
	if err != nil {
		return nil, err
	}
	return []fasta.Record{{Name: "seq", Seq: seq}}, nil
}

// readSequence returns the first record of the named file, or a
// record named "seq" holding literal text if literal is non-empty.
func readSequence(path, literal string, stdin io.Reader, kind nt.Kind) (fasta.Record, error) {
	records, err := readRecords(path, literal, stdin, kind)
	if err != nil {
		return fasta.Record{}, err
	}
	if len(records) == 0 {
		return fasta.Record{}, fmt.Errorf("%s: no sequences", path)
	}
	if len(records) > 1 {
		log.Warnf("%s: using first of %d records (%s)", path, len(records), records[0].Name)
	}
	return records[0], nil
}

// openOutput returns stdout (wrapped so closing it is a no-op) if
// path is "" or "-", otherwise a newly created file.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
}
