package main

import (
	"bufio"
	"compress/gzip"
	"encoding/gob"
	"io"

	"github.com/ntseq/ntseq/matchmap"
	"golang.org/x/crypto/blake2b"
)

// MapResult is one query/target record written by "map -o" and read by
// "export-numpy".
type MapResult struct {
	Query        string
	Target       string
	QueryDigest  [blake2b.Size256]byte
	TargetDigest [blake2b.Size256]byte
	QueryLen     int
	TargetLen    int
	Best         matchmap.Match
	Profile      []uint32
	Histogram    []uint64
}

// ReadMapResults decodes a stream of gob-encoded MapResults, which may
// be gzipped.
func ReadMapResults(rdr io.Reader) ([]MapResult, error) {
	bufr := bufio.NewReader(rdr)
	if sig, _ := bufr.Peek(2); len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		gzr, err := gzip.NewReader(bufr)
		if err != nil {
			return nil, err
		}
		defer gzr.Close()
		rdr = gzr
	} else {
		rdr = bufr
	}
	dec := gob.NewDecoder(rdr)
	var ret []MapResult
	for {
		var ent MapResult
		err := dec.Decode(&ent)
		if err == io.EOF {
			return ret, nil
		} else if err != nil {
			return nil, err
		}
		ret = append(ret, ent)
	}
}
