// Package nt represents nucleotide sequences as lists of compatibility
// sets over the four exact bases, and implements the set algebra
// (complement, mask, cover) and editing operations built on them.
package nt

// A Symbol is a subset of {A, T, G, C}. Bit 3 is A, bit 2 is T (or U),
// bit 1 is G, bit 0 is C. The empty set is a gap.
type Symbol uint8

const (
	Gap Symbol = 0
	C   Symbol = 1
	G   Symbol = 2
	S   Symbol = G | C
	T   Symbol = 4
	Y   Symbol = T | C
	K   Symbol = T | G
	B   Symbol = T | G | C
	A   Symbol = 8
	M   Symbol = A | C
	R   Symbol = A | G
	V   Symbol = A | G | C
	W   Symbol = A | T
	H   Symbol = A | T | C
	D   Symbol = A | T | G
	N   Symbol = A | T | G | C
)

// NumSymbols is the size of the symbol domain.
const NumSymbols = 16

// Kind controls how the T/U base is rendered.
type Kind uint8

const (
	DNA Kind = iota
	RNA
)

func (k Kind) String() string {
	if k == RNA {
		return "RNA"
	}
	return "DNA"
}

var (
	// indexed by Symbol
	letters = [NumSymbols]byte{'-', 'C', 'G', 'S', 'T', 'Y', 'K', 'B', 'A', 'M', 'R', 'V', 'W', 'H', 'D', 'N'}

	// indexed by input byte; 0xff = not in alphabet
	fromLetter = func() []Symbol {
		r := make([]Symbol, 256)
		for i := range r {
			r[i] = 0xff
		}
		for sym, l := range letters {
			r[int(l)] = Symbol(sym)
			if l >= 'A' && l <= 'Z' {
				r[int(l+'a'-'A')] = Symbol(sym)
			}
		}
		r[int('U')] = T
		r[int('u')] = T
		return r
	}()

	complements = func() [NumSymbols]Symbol {
		var r [NumSymbols]Symbol
		for sym := Symbol(0); sym < NumSymbols; sym++ {
			// rotate left within the nibble: A->C, T->A, G->T, C->G
			r[sym] = ((sym << 1) | (sym >> 3)) & N
		}
		return r
	}()

	// Watson-Crick partners: swap A<->T (bits 3,2) and G<->C (bits 1,0)
	pairs = func() [NumSymbols]Symbol {
		var r [NumSymbols]Symbol
		for sym := Symbol(0); sym < NumSymbols; sym++ {
			r[sym] = (sym&0xa)>>1 | (sym&0x5)<<1
		}
		return r
	}()

	popcount = func() [NumSymbols]int {
		var r [NumSymbols]int
		for sym := 0; sym < NumSymbols; sym++ {
			for b := sym; b > 0; b >>= 1 {
				r[sym] += b & 1
			}
		}
		return r
	}()
)

// ParseSymbol returns the symbol for an alphabet letter (either case;
// U is read as T).
func ParseSymbol(letter byte) (Symbol, bool) {
	sym := fromLetter[int(letter)]
	return sym, sym != 0xff
}

// Letter returns the text form of sym, rendering T as U for RNA.
func (sym Symbol) Letter(kind Kind) byte {
	if sym == T && kind == RNA {
		return 'U'
	}
	return letters[sym&N]
}

func (sym Symbol) String() string {
	return string(letters[sym&N])
}

// Complement substitutes each base in the set through the cycle
// A->C->G->T->A.
func (sym Symbol) Complement() Symbol {
	return complements[sym&N]
}

// Pair returns the Watson-Crick partner set: A<->T, G<->C. Unlike
// Complement it is its own inverse.
func (sym Symbol) Pair() Symbol {
	return pairs[sym&N]
}

// Compatible reports whether the sets share a base, or are both gaps.
func (sym Symbol) Compatible(other Symbol) bool {
	return sym&other != 0 || sym|other == Gap
}

// Union returns the symbol covering every base of either set.
func (sym Symbol) Union(other Symbol) Symbol {
	return sym | other
}

// Bases returns the number of exact bases in the set.
func (sym Symbol) Bases() int {
	return popcount[sym&N]
}

// Has reports whether base is a member of the set.
func (sym Symbol) Has(base Symbol) bool {
	return base != Gap && sym&base == base
}

func (sym Symbol) IsGap() bool   { return sym == Gap }
func (sym Symbol) IsExact() bool { return popcount[sym&N] == 1 }
