package nt

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSymbol  = errors.New("invalid symbol")
	ErrRange          = errors.New("range out of bounds")
	ErrLengthMismatch = errors.New("sequence length mismatch")
	ErrAmbiguousCodon = errors.New("ambiguous codon")
)

// Rest can be passed as a length argument to mean "through the end of
// the sequence".
const Rest = -1

// Seq is an immutable list of symbols. Every operation that changes
// content returns a new Seq, so a Seq can be shared between goroutines
// without locking.
type Seq struct {
	kind Kind
	syms []Symbol
}

// Read decodes text into a new sequence of the given kind.
func Read(text string, kind Kind) (*Seq, error) {
	return ReadBytes([]byte(text), kind)
}

// ReadBytes is like Read, but takes a byte slice. The slice is not
// retained.
func ReadBytes(text []byte, kind Kind) (*Seq, error) {
	syms := make([]Symbol, len(text))
	for i, c := range text {
		sym, ok := ParseSymbol(c)
		if !ok {
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidSymbol, c, i)
		}
		syms[i] = sym
	}
	return &Seq{kind: kind, syms: syms}, nil
}

// MustRead is like Read, but panics on error. For literals in tests
// and tables.
func MustRead(text string, kind Kind) *Seq {
	seq, err := Read(text, kind)
	if err != nil {
		panic(err)
	}
	return seq
}

// FromSymbols returns a sequence holding a copy of syms. Values outside
// the symbol domain are rejected.
func FromSymbols(syms []Symbol, kind Kind) (*Seq, error) {
	out := make([]Symbol, len(syms))
	for i, sym := range syms {
		if sym >= NumSymbols {
			return nil, fmt.Errorf("%w 0x%x at offset %d", ErrInvalidSymbol, uint8(sym), i)
		}
		out[i] = sym
	}
	return &Seq{kind: kind, syms: out}, nil
}

// owned wraps syms without copying. Callers must not retain syms.
func owned(syms []Symbol, kind Kind) *Seq {
	return &Seq{kind: kind, syms: syms}
}

func (seq *Seq) Kind() Kind { return seq.kind }

// Len returns the number of symbols.
func (seq *Seq) Len() int { return len(seq.syms) }

// At returns the i'th symbol.
func (seq *Seq) At(i int) Symbol { return seq.syms[i] }

// Symbols returns a copy of the symbol list.
func (seq *Seq) Symbols() []Symbol {
	return append([]Symbol(nil), seq.syms...)
}

// WithKind returns a sequence with the same symbols and a different
// kind.
func (seq *Seq) WithKind(kind Kind) *Seq {
	return &Seq{kind: kind, syms: seq.syms}
}

// Sequence renders the sequence as text.
func (seq *Seq) Sequence() string {
	return string(seq.AppendText(make([]byte, 0, len(seq.syms))))
}

// AppendText appends the text form of the sequence to buf.
func (seq *Seq) AppendText(buf []byte) []byte {
	for _, sym := range seq.syms {
		buf = append(buf, sym.Letter(seq.kind))
	}
	return buf
}

func (seq *Seq) String() string { return seq.Sequence() }

// Equivalent reports whether both sequences hold the same symbols in
// the same order. Kind is not compared.
func (seq *Seq) Equivalent(other *Seq) bool {
	if len(seq.syms) != len(other.syms) {
		return false
	}
	for i, sym := range seq.syms {
		if other.syms[i] != sym {
			return false
		}
	}
	return true
}

func checkRange(size, offset, length int) error {
	if offset < 0 || length < 0 || offset > size || length > size-offset {
		return fmt.Errorf("%w: offset %d length %d in sequence of length %d", ErrRange, offset, length, size)
	}
	return nil
}
