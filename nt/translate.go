package nt

import "fmt"

// Standard genetic code.
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// codons is codonTable indexed by the three exact-base symbols, each
// 4 bits wide.
var codons = func() []byte {
	r := make([]byte, 1<<12)
	for codon, aa := range codonTable {
		var key int
		for i := 0; i < 3; i++ {
			sym, _ := ParseSymbol(codon[i])
			key = key<<4 | int(sym)
		}
		r[key] = aa
	}
	return r
}()

// TranslateCodon returns the amino acid for three symbols. Ambiguity
// codes are accepted when every exact codon they cover encodes the same
// amino acid (e.g. GCN is A); otherwise, and for gaps, the error wraps
// ErrAmbiguousCodon.
func TranslateCodon(a, b, c Symbol) (byte, error) {
	if a.IsExact() && b.IsExact() && c.IsExact() {
		return codons[int(a)<<8|int(b)<<4|int(c)], nil
	}
	var aa byte
	for _, x := range exactBases {
		if !a.Has(x) {
			continue
		}
		for _, y := range exactBases {
			if !b.Has(y) {
				continue
			}
			for _, z := range exactBases {
				if !c.Has(z) {
					continue
				}
				got := codons[int(x)<<8|int(y)<<4|int(z)]
				if aa != 0 && got != aa {
					return 0, fmt.Errorf("%w %c%c%c", ErrAmbiguousCodon, a.Letter(DNA), b.Letter(DNA), c.Letter(DNA))
				}
				aa = got
			}
		}
	}
	if aa == 0 {
		// at least one gap
		return 0, fmt.Errorf("%w %c%c%c", ErrAmbiguousCodon, a.Letter(DNA), b.Letter(DNA), c.Letter(DNA))
	}
	return aa, nil
}

// Translate reads consecutive codons from [offset, offset+length) and
// returns one amino acid letter per complete codon. Pass Rest as length
// to translate through the end.
func (seq *Seq) Translate(offset, length int) (string, error) {
	if length == Rest && offset >= 0 && offset <= len(seq.syms) {
		length = len(seq.syms) - offset
	}
	if err := checkRange(len(seq.syms), offset, length); err != nil {
		return "", err
	}
	out := make([]byte, length/3)
	for i := range out {
		p := offset + i*3
		aa, err := TranslateCodon(seq.syms[p], seq.syms[p+1], seq.syms[p+2])
		if err != nil {
			return "", fmt.Errorf("codon at offset %d: %w", p, err)
		}
		out[i] = aa
	}
	return string(out), nil
}

// TranslateFrame translates aaLength codons of reading frame frame
// (0, 1 or 2), skipping the first aaOffset codons. Pass Rest as
// aaLength to translate every complete codon that follows; that is
// empty, not an error, when the sequence ends before the start codon.
func (seq *Seq) TranslateFrame(frame, aaOffset, aaLength int) (string, error) {
	if frame < 0 || frame > 2 || aaOffset < 0 {
		return "", fmt.Errorf("%w: frame %d amino acid offset %d", ErrRange, frame, aaOffset)
	}
	if aaLength == Rest {
		if frame+aaOffset*3 >= len(seq.syms) {
			return "", nil
		}
		aaLength = (len(seq.syms)-frame)/3 - aaOffset
	}
	return seq.Translate(frame+aaOffset*3, aaLength*3)
}
