package nt

// Exact bases in the order content reports use.
var exactBases = [4]Symbol{A, T, G, C}

func (seq *Seq) counts() [NumSymbols]int {
	var n [NumSymbols]int
	for _, sym := range seq.syms {
		n[sym]++
	}
	return n
}

// Content maps the text form of each symbol present in the sequence
// to its number of occurrences. Ambiguity codes and gaps are counted
// as themselves.
func (seq *Seq) Content() map[string]int {
	out := map[string]int{}
	for sym, n := range seq.counts() {
		if n > 0 {
			out[string(Symbol(sym).Letter(seq.kind))] = n
		}
	}
	return out
}

// FractionalContent is Content divided by Len.
func (seq *Seq) FractionalContent() map[string]float64 {
	out := map[string]float64{}
	size := float64(len(seq.syms))
	for k, n := range seq.Content() {
		out[k] = float64(n) / size
	}
	return out
}

// ContentATGC spreads each symbol's occurrences evenly over the exact
// bases it covers. Gaps contribute nothing. Keys are always "A", "T",
// "G" and "C".
func (seq *Seq) ContentATGC() map[string]float64 {
	var weight [4]float64
	for sym, n := range seq.counts() {
		sym := Symbol(sym)
		if n == 0 || sym == Gap {
			continue
		}
		share := float64(n) / float64(sym.Bases())
		for i, base := range exactBases {
			if sym.Has(base) {
				weight[i] += share
			}
		}
	}
	out := make(map[string]float64, 4)
	for i, base := range exactBases {
		out[base.String()] = weight[i]
	}
	return out
}

// FractionalContentATGC is ContentATGC divided by Len. An empty
// sequence reports zero for every base.
func (seq *Seq) FractionalContentATGC() map[string]float64 {
	out := seq.ContentATGC()
	if len(seq.syms) == 0 {
		return out
	}
	for k, w := range out {
		out[k] = w / float64(len(seq.syms))
	}
	return out
}
