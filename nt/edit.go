package nt

import "fmt"

// LengthPolicy decides what Mask and Cover do when the two sequences
// differ in length.
type LengthPolicy uint8

const (
	// Strict fails with ErrLengthMismatch.
	Strict LengthPolicy = iota
	// Truncate operates on the common prefix; the result has the
	// length of the shorter sequence.
	Truncate
)

func (p LengthPolicy) String() string {
	if p == Truncate {
		return "truncate"
	}
	return "strict"
}

// ParseLengthPolicy accepts "strict" or "truncate".
func ParseLengthPolicy(s string) (LengthPolicy, error) {
	switch s {
	case "strict", "":
		return Strict, nil
	case "truncate":
		return Truncate, nil
	}
	return Strict, fmt.Errorf("unknown length policy %q", s)
}

// Clone returns a copy of the whole sequence.
func (seq *Seq) Clone() *Seq {
	return owned(seq.Symbols(), seq.kind)
}

// Replicate returns a copy of [offset, offset+length). Pass Rest as
// length to copy through the end.
func (seq *Seq) Replicate(offset, length int) (*Seq, error) {
	if length == Rest && offset >= 0 && offset <= len(seq.syms) {
		length = len(seq.syms) - offset
	}
	if err := checkRange(len(seq.syms), offset, length); err != nil {
		return nil, err
	}
	return owned(append([]Symbol(nil), seq.syms[offset:offset+length]...), seq.kind), nil
}

// Deletion returns the sequence with [offset, offset+length) removed.
// A length running past the end is clamped.
func (seq *Seq) Deletion(offset, length int) (*Seq, error) {
	if offset < 0 || offset > len(seq.syms) || length < 0 {
		return nil, fmt.Errorf("%w: delete offset %d length %d from sequence of length %d", ErrRange, offset, length, len(seq.syms))
	}
	if tail := len(seq.syms) - offset; length > tail {
		length = tail
	}
	out := make([]Symbol, 0, len(seq.syms)-length)
	out = append(out, seq.syms[:offset]...)
	out = append(out, seq.syms[offset+length:]...)
	return owned(out, seq.kind), nil
}

// Insertion returns the sequence with other spliced in before offset.
func (seq *Seq) Insertion(other *Seq, offset int) (*Seq, error) {
	if offset < 0 || offset > len(seq.syms) {
		return nil, fmt.Errorf("%w: insert at %d in sequence of length %d", ErrRange, offset, len(seq.syms))
	}
	out := make([]Symbol, 0, len(seq.syms)+len(other.syms))
	out = append(out, seq.syms[:offset]...)
	out = append(out, other.syms...)
	out = append(out, seq.syms[offset:]...)
	return owned(out, seq.kind), nil
}

// Polymerize returns seq followed by other.
func (seq *Seq) Polymerize(other *Seq) *Seq {
	out := make([]Symbol, 0, len(seq.syms)+len(other.syms))
	out = append(out, seq.syms...)
	out = append(out, other.syms...)
	return owned(out, seq.kind)
}

// Repeat returns n consecutive copies of seq.
func (seq *Seq) Repeat(n int) (*Seq, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: repeat count %d", ErrRange, n)
	}
	out := make([]Symbol, 0, len(seq.syms)*n)
	for i := 0; i < n; i++ {
		out = append(out, seq.syms...)
	}
	return owned(out, seq.kind), nil
}

// Complement applies Symbol.Complement at every position. Order is
// preserved.
func (seq *Seq) Complement() *Seq {
	out := make([]Symbol, len(seq.syms))
	for i, sym := range seq.syms {
		out[i] = complements[sym]
	}
	return owned(out, seq.kind)
}

// ReverseComplement returns the opposite strand: each symbol replaced
// by its Watson-Crick partner set, in reverse order.
func (seq *Seq) ReverseComplement() *Seq {
	n := len(seq.syms)
	out := make([]Symbol, n)
	for i, sym := range seq.syms {
		out[n-1-i] = pairs[sym]
	}
	return owned(out, seq.kind)
}

// Mask keeps each symbol of seq that is compatible with the symbol at
// the same position in other, and replaces the rest with gaps.
func (seq *Seq) Mask(other *Seq, policy LengthPolicy) (*Seq, error) {
	return seq.zip(other, policy, "mask", func(a, b Symbol) Symbol {
		if a.Compatible(b) {
			return a
		}
		return Gap
	})
}

// Cover replaces each symbol with its union with the symbol at the same
// position in other.
func (seq *Seq) Cover(other *Seq, policy LengthPolicy) (*Seq, error) {
	return seq.zip(other, policy, "cover", Symbol.Union)
}

func (seq *Seq) zip(other *Seq, policy LengthPolicy, op string, fn func(a, b Symbol) Symbol) (*Seq, error) {
	n := len(seq.syms)
	if len(other.syms) != n {
		if policy != Truncate {
			return nil, fmt.Errorf("%w: cannot %s length %d with length %d", ErrLengthMismatch, op, n, len(other.syms))
		}
		if len(other.syms) < n {
			n = len(other.syms)
		}
	}
	out := make([]Symbol, n)
	for i := range out {
		out[i] = fn(seq.syms[i], other.syms[i])
	}
	return owned(out, seq.kind), nil
}
