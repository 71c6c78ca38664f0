// Package fourbit reads and writes the packed "4bnt" form of a
// sequence: a 5-byte header (kind byte, little-endian uint32 symbol
// count) followed by two symbols per byte, first symbol in the high
// nibble. Each nibble is the symbol's base set (A=8, T=4, G=2, C=1).
package fourbit

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ntseq/ntseq/nt"
	"golang.org/x/crypto/blake2b"
)

const HeaderSize = 5

var ErrFormat = errors.New("malformed 4bnt data")

// BodySize returns the number of packed bytes following the header
// for a sequence of n symbols.
func BodySize(n int) int {
	return (n + 1) / 2
}

func header(seq *nt.Seq) ([HeaderSize]byte, error) {
	var hdr [HeaderSize]byte
	if int64(seq.Len()) > math.MaxUint32 {
		return hdr, fmt.Errorf("sequence length %d does not fit in 4bnt header", seq.Len())
	}
	hdr[0] = byte(seq.Kind())
	binary.LittleEndian.PutUint32(hdr[1:], uint32(seq.Len()))
	return hdr, nil
}

// Write writes the packed form of seq to w.
func Write(w io.Writer, seq *nt.Seq) error {
	hdr, err := header(seq)
	if err != nil {
		return err
	}
	bufw := bufio.NewWriter(w)
	bufw.Write(hdr[:])
	n := seq.Len()
	for i := 0; i < n; i += 2 {
		b := byte(seq.At(i)) << 4
		if i+1 < n {
			b |= byte(seq.At(i + 1))
		}
		bufw.WriteByte(b)
	}
	return bufw.Flush()
}

// Encode returns the packed form of seq.
func Encode(seq *nt.Seq) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+BodySize(seq.Len())))
	if err := Write(buf, seq); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read reads one packed sequence from r. Data following the packed
// body is left unread.
func Read(r io.Reader) (*nt.Seq, error) {
	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w: short header", ErrFormat)
	} else if err != nil {
		return nil, err
	}
	kind := nt.Kind(hdr[0])
	if kind != nt.DNA && kind != nt.RNA {
		return nil, fmt.Errorf("%w: unknown kind %d", ErrFormat, hdr[0])
	}
	n := int(binary.LittleEndian.Uint32(hdr[1:]))
	// The header count is untrusted, so grow the body as bytes arrive
	// rather than allocating it up front.
	var bodybuf bytes.Buffer
	if _, err := io.CopyN(&bodybuf, r, int64(BodySize(n))); err == io.EOF {
		return nil, fmt.Errorf("%w: header says %d symbols, body truncated", ErrFormat, n)
	} else if err != nil {
		return nil, err
	}
	body := bodybuf.Bytes()
	if n%2 == 1 && body[len(body)-1]&0xf != 0 {
		return nil, fmt.Errorf("%w: nonzero padding nibble", ErrFormat)
	}
	syms := make([]nt.Symbol, n)
	for i := range syms {
		b := body[i/2]
		if i%2 == 0 {
			b >>= 4
		}
		syms[i] = nt.Symbol(b & 0xf)
	}
	return nt.FromSymbols(syms, kind)
}

// Decode is like Read, but requires buf to hold exactly one packed
// sequence.
func Decode(buf []byte) (*nt.Seq, error) {
	if len(buf) >= HeaderSize {
		n := int(binary.LittleEndian.Uint32(buf[1:HeaderSize]))
		if want := HeaderSize + BodySize(n); len(buf) > want {
			return nil, fmt.Errorf("%w: %d bytes of trailing data", ErrFormat, len(buf)-want)
		}
	}
	return Read(bytes.NewReader(buf))
}

// Sum returns the BLAKE2b-256 digest of the packed form of seq. Two
// sequences have the same digest iff they have the same kind and
// symbols, regardless of whether they were read from text or 4bnt.
func Sum(seq *nt.Seq) ([blake2b.Size256]byte, error) {
	var sum [blake2b.Size256]byte
	h, err := blake2b.New256(nil)
	if err != nil {
		return sum, err
	}
	if err := Write(h, seq); err != nil {
		return sum, err
	}
	copy(sum[:], h.Sum(nil))
	return sum, nil
}
