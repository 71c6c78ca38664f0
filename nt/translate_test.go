package nt

import (
	"errors"

	"gopkg.in/check.v1"
)

type translateSuite struct{}

var _ = check.Suite(&translateSuite{})

func (s *translateSuite) TestTranslate(c *check.C) {
	seq := MustRead("ATGCATGCATGCATGC", DNA)
	for _, trial := range []struct {
		offset, length int
		expect         string
	}{
		{0, Rest, "MHACM"},
		{1, Rest, "CMHAC"},
		{1, 7, "CM"},
		{2, Rest, "ACMH"},
		{2, 7, "AC"},
		{16, Rest, ""},
	} {
		aa, err := seq.Translate(trial.offset, trial.length)
		c.Assert(err, check.IsNil)
		c.Check(aa, check.Equals, trial.expect, check.Commentf("%+v", trial))
	}
	aa, err := MustRead("ATG", DNA).Translate(0, Rest)
	c.Check(err, check.IsNil)
	c.Check(aa, check.Equals, "M")
	aa, err = MustRead("AUGUAA", RNA).Translate(0, Rest)
	c.Check(err, check.IsNil)
	c.Check(aa, check.Equals, "M*")
}

func (s *translateSuite) TestTranslateFrame(c *check.C) {
	seq := MustRead("ATGCATGCATGCATGC", DNA)
	for _, trial := range []struct {
		frame, aaOffset, aaLength int
		expect                    string
	}{
		{0, 0, Rest, "MHACM"},
		{0, 1, Rest, "HACM"},
		{0, 1, 2, "HA"},
		{1, 1, 2, "MH"},
		{2, 1, 2, "CM"},
		{2, 0, Rest, "ACMH"},
	} {
		aa, err := seq.TranslateFrame(trial.frame, trial.aaOffset, trial.aaLength)
		c.Assert(err, check.IsNil)
		c.Check(aa, check.Equals, trial.expect, check.Commentf("%+v", trial))
	}
	_, err := seq.TranslateFrame(3, 0, Rest)
	c.Check(errors.Is(err, ErrRange), check.Equals, true)
	_, err = seq.TranslateFrame(0, 5, 1)
	c.Check(errors.Is(err, ErrRange), check.Equals, true)
}

func (s *translateSuite) TestTranslateFrameShort(c *check.C) {
	for _, trial := range []struct {
		seq             string
		frame, aaOffset int
	}{
		{"A", 2, 0},
		{"AT", 2, 0},
		{"", 0, 0},
		{"ATGCAT", 0, 2},
		{"ATGCAT", 1, 5},
	} {
		aa, err := MustRead(trial.seq, DNA).TranslateFrame(trial.frame, trial.aaOffset, Rest)
		c.Check(err, check.IsNil, check.Commentf("%+v", trial))
		c.Check(aa, check.Equals, "", check.Commentf("%+v", trial))
	}
	aa, err := MustRead("ATGC", DNA).TranslateFrame(2, 0, Rest)
	c.Check(err, check.IsNil)
	c.Check(aa, check.Equals, "")

	_, err = MustRead("A", DNA).TranslateFrame(2, 0, 1)
	c.Check(errors.Is(err, ErrRange), check.Equals, true)
}

func (s *translateSuite) TestTranslateRange(c *check.C) {
	seq := MustRead("ATGCAT", DNA)
	_, err := seq.Translate(4, 6)
	c.Check(errors.Is(err, ErrRange), check.Equals, true)
	_, err = seq.Translate(-1, Rest)
	c.Check(errors.Is(err, ErrRange), check.Equals, true)
}

func (s *translateSuite) TestAmbiguousCodon(c *check.C) {
	// all of GCN encode alanine
	aa, err := MustRead("GCNGGN", DNA).Translate(0, Rest)
	c.Check(err, check.IsNil)
	c.Check(aa, check.Equals, "AG")
	// TAR is stop either way; YTR is leucine either way
	aa, err = MustRead("TARYTR", DNA).Translate(0, Rest)
	c.Check(err, check.IsNil)
	c.Check(aa, check.Equals, "*L")

	for _, text := range []string{"ATGNNN", "ATGAAN", "AT-", "---"} {
		_, err = MustRead(text, DNA).Translate(0, Rest)
		c.Check(errors.Is(err, ErrAmbiguousCodon), check.Equals, true, check.Commentf("%s", text))
	}
	_, err = MustRead("ATGAAN", DNA).Translate(0, Rest)
	c.Check(err, check.ErrorMatches, `codon at offset 3: ambiguous codon AAN`)
}
