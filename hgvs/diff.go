// Package hgvs describes the differences between two nucleotide
// sequences as HGVS-style variants.
package hgvs

import (
	"fmt"
	"time"

	"github.com/ntseq/ntseq/nt"
	"github.com/sergi/go-diff/diffmatchpatch"
)

type Variant struct {
	Position int // 1-based position in the reference
	Ref      string
	New      string
	// Compatible is true for a substitution where every new symbol
	// shares at least one base with the reference symbol it replaces,
	// e.g. A>R.
	Compatible bool
}

func (v *Variant) String() string {
	switch {
	case len(v.New) == 0 && len(v.Ref) == 1:
		return fmt.Sprintf("%ddel", v.Position)
	case len(v.New) == 0:
		return fmt.Sprintf("%d_%ddel", v.Position, v.Position+len(v.Ref)-1)
	case len(v.Ref) == 1 && len(v.New) == 1:
		return fmt.Sprintf("%d%s>%s", v.Position, v.Ref, v.New)
	case len(v.Ref) == 0:
		return fmt.Sprintf("%d_%dins%s", v.Position-1, v.Position, v.New)
	case len(v.Ref) == 1 && len(v.New) > 0:
		return fmt.Sprintf("%ddelins%s", v.Position, v.New)
	default:
		return fmt.Sprintf("%d_%ddelins%s", v.Position, v.Position+len(v.Ref)-1, v.New)
	}
}

// Diff returns the variants that transform ref into alt. If timeout
// is positive, the diff gives up looking for a minimal edit script
// after that long and returns a coarser (but still correct) result.
func Diff(ref, alt *nt.Seq, timeout time.Duration) []Variant {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	dmp := diffmatchpatch.New()
	diffs := cleanup(dmp.DiffCleanupEfficiency(dmp.DiffBisect(ref.Sequence(), alt.Sequence(), deadline)))
	pos := 1
	var variants []Variant
	for i := 0; i < len(diffs); i++ {
		switch diffs[i].Type {
		case diffmatchpatch.DiffEqual:
			pos += len(diffs[i].Text)
		case diffmatchpatch.DiffDelete:
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
				// deletion followed by insertion
				variants = append(variants, substitution(pos, diffs[i].Text, diffs[i+1].Text))
				pos += len(diffs[i].Text)
				i++
			} else {
				variants = append(variants, Variant{Position: pos, Ref: diffs[i].Text})
				pos += len(diffs[i].Text)
			}
		case diffmatchpatch.DiffInsert:
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffDelete {
				// insertion followed by deletion
				variants = append(variants, substitution(pos, diffs[i+1].Text, diffs[i].Text))
				pos += len(diffs[i+1].Text)
				i++
			} else {
				variants = append(variants, Variant{Position: pos, New: diffs[i].Text})
			}
		}
	}
	return variants
}

func substitution(pos int, ref, alt string) Variant {
	v := Variant{Position: pos, Ref: ref, New: alt}
	if len(ref) != len(alt) {
		return v
	}
	for i := 0; i < len(ref); i++ {
		a, ok1 := nt.ParseSymbol(ref[i])
		b, ok2 := nt.ParseSymbol(alt[i])
		if !ok1 || !ok2 || a.IsGap() || b.IsGap() || !a.Compatible(b) {
			return v
		}
	}
	v.Compatible = true
	return v
}

func cleanup(in []diffmatchpatch.Diff) (out []diffmatchpatch.Diff) {
	for i := 0; i < len(in); i++ {
		d := in[i]
		for i < len(in)-1 && in[i].Type == in[i+1].Type {
			d.Text += in[i+1].Text
			i++
		}
		out = append(out, d)
	}
	return
}
