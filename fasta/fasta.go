// Package fasta converts between FASTA text and nt sequences.
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ntseq/ntseq/nt"
)

// DefaultWidth is the line width used by Write when width <= 0.
const DefaultWidth = 60

type Record struct {
	Name        string // header up to the first whitespace
	Description string // remainder of the header line
	Seq         *nt.Seq
}

// Read parses every record in rdr. Sequence data before the first
// header line becomes a record with an empty name. Lines starting with
// ';' are ignored.
func Read(rdr io.Reader, kind nt.Kind) ([]Record, error) {
	var records []Record
	var fasta []byte
	var name, desc string
	seen := false
	flush := func() error {
		if !seen && len(fasta) == 0 {
			return nil
		}
		seq, err := nt.ReadBytes(fasta, kind)
		if err != nil {
			return fmt.Errorf("fasta record %q: %w", name, err)
		}
		records = append(records, Record{Name: name, Description: desc, Seq: seq})
		return nil
	}
	scanner := bufio.NewScanner(rdr)
	scanner.Buffer(nil, 640*1024*1024)
	for scanner.Scan() {
		buf := scanner.Bytes()
		if len(buf) > 0 && buf[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			seen = true
			fasta = fasta[:0]
			name, desc = splitHeader(string(buf[1:]))
		} else if len(buf) > 0 && buf[0] == ';' {
			continue
		} else {
			for _, field := range bytes.Fields(buf) {
				fasta = append(fasta, field...)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return records, nil
}

func splitHeader(hdr string) (name, desc string) {
	hdr = strings.TrimSpace(hdr)
	if i := strings.IndexAny(hdr, " \t"); i >= 0 {
		return hdr[:i], strings.TrimSpace(hdr[i+1:])
	}
	return hdr, ""
}

// ReadFile reads all records from the named file. See Open.
func ReadFile(path string, kind nt.Kind) ([]Record, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := Read(f, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Write writes one record, wrapping the sequence at width symbols per
// line.
func Write(w io.Writer, rec Record, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	bufw := bufio.NewWriter(w)
	bufw.WriteByte('>')
	bufw.WriteString(rec.Name)
	if rec.Description != "" {
		bufw.WriteByte(' ')
		bufw.WriteString(rec.Description)
	}
	bufw.WriteByte('\n')
	text := rec.Seq.AppendText(nil)
	for len(text) > 0 {
		n := width
		if n > len(text) {
			n = len(text)
		}
		bufw.Write(text[:n])
		bufw.WriteByte('\n')
		text = text[n:]
	}
	return bufw.Flush()
}

type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens the named file for reading, transparently decompressing
// gzip data (detected by magic number). "-" means stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	bufr := bufio.NewReader(f)
	if sig, _ := bufr.Peek(2); len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		gzr, err := gzip.NewReader(bufr)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: gzip: %s", path, err)
		}
		return &multiReadCloser{Reader: gzr, closers: []io.Closer{gzr, f}}, nil
	}
	return &multiReadCloser{Reader: bufr, closers: []io.Closer{f}}, nil
}
