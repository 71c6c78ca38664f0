package nt

import (
	"errors"
	"strings"

	"gopkg.in/check.v1"
)

type editSuite struct{}

var _ = check.Suite(&editSuite{})

func (s *editSuite) TestComplement(c *check.C) {
	for _, trial := range []struct {
		in, out string
	}{
		{"ATGCATG", "CATGCAT"},
		{"ATGCATGC", "CATGCATG"},
		{"ATGCATGCA", "CATGCATGC"},
		{"AWN-", "CMN-"},
	} {
		a := MustRead(trial.in, DNA)
		comp := a.Complement()
		c.Check(comp.Sequence(), check.Equals, trial.out)
		c.Check(comp.Len(), check.Equals, a.Len())
		c.Check(a.Sequence(), check.Equals, trial.in)
	}
}

func (s *editSuite) TestReverseComplement(c *check.C) {
	for _, trial := range []struct {
		in, out string
	}{
		{"ATGCATG", "CATGCAT"},
		{"ATGCATGC", "GCATGCAT"},
		{"ATGCATGCA", "TGCATGCAT"},
		{"AWN-", "-NWT"},
		{"RYKM", "KMRY"},
		{"BDHVS", "SBDHV"},
		{"", ""},
	} {
		a := MustRead(trial.in, DNA)
		rc := a.ReverseComplement()
		c.Check(rc.Sequence(), check.Equals, trial.out, check.Commentf("%s", trial.in))
		c.Check(rc.ReverseComplement().Sequence(), check.Equals, trial.in)
		c.Check(a.Sequence(), check.Equals, trial.in)
	}
	c.Check(MustRead("ACGU", RNA).ReverseComplement().Sequence(), check.Equals, "ACGU")
}

func (s *editSuite) TestReplicate(c *check.C) {
	a := MustRead("ATGCATGCA", DNA)
	for _, trial := range []struct {
		offset, length int
		expect         string
	}{
		{0, Rest, "ATGCATGCA"},
		{1, Rest, "TGCATGCA"},
		{0, 8, "ATGCATGC"},
		{7, 2, "CA"},
		{9, 0, ""},
		{9, Rest, ""},
	} {
		r, err := a.Replicate(trial.offset, trial.length)
		c.Assert(err, check.IsNil)
		c.Check(r.Sequence(), check.Equals, trial.expect)
		c.Check(r.Len(), check.Equals, len(trial.expect))
	}
	c.Check(a.Clone().Sequence(), check.Equals, "ATGCATGCA")
}

func (s *editSuite) TestReplicateRange(c *check.C) {
	a := MustRead("ATGCATGCA", DNA)
	for _, trial := range [][2]int{{-1, 2}, {0, -2}, {8, 2}, {10, Rest}, {10, 0}} {
		_, err := a.Replicate(trial[0], trial[1])
		c.Check(errors.Is(err, ErrRange), check.Equals, true, check.Commentf("%v", trial))
	}
}

func (s *editSuite) TestPolymerize(c *check.C) {
	a := MustRead("ATGC", DNA)
	c.Check(a.Polymerize(MustRead("TCAG", DNA)).Sequence(), check.Equals, "ATGCTCAG")
	c.Check(MustRead("ATGCA", DNA).Polymerize(MustRead("TCAG", DNA)).Sequence(), check.Equals, "ATGCATCAG")
	c.Check(a.Sequence(), check.Equals, "ATGC")
}

func (s *editSuite) TestInsertion(c *check.C) {
	a := MustRead("ATGC", DNA)
	for _, trial := range []struct {
		other  string
		offset int
		expect string
	}{
		{"TCAG", 0, "TCAGATGC"},
		{"TCAGT", 0, "TCAGTATGC"},
		{"TCAGT", 1, "ATCAGTTGC"},
		{"TC", 4, "ATGCTC"},
	} {
		r, err := a.Insertion(MustRead(trial.other, DNA), trial.offset)
		c.Assert(err, check.IsNil)
		c.Check(r.Sequence(), check.Equals, trial.expect)
	}
	_, err := a.Insertion(a, 5)
	c.Check(errors.Is(err, ErrRange), check.Equals, true)
	_, err = a.Insertion(a, -1)
	c.Check(errors.Is(err, ErrRange), check.Equals, true)
}

func (s *editSuite) TestDeletion(c *check.C) {
	a := MustRead("ATGCATGCA", DNA)
	for _, trial := range []struct {
		offset, length int
		expect         string
	}{
		{0, 1, "TGCATGCA"},
		{0, 2, "GCATGCA"},
		{1, 2, "ACATGCA"},
		{1, 7, "AA"},
		{8, 1, "ATGCATGC"},
		{8, 5, "ATGCATGC"},
		{3, 0, "ATGCATGCA"},
		{9, 3, "ATGCATGCA"},
	} {
		r, err := a.Deletion(trial.offset, trial.length)
		c.Assert(err, check.IsNil)
		c.Check(r.Sequence(), check.Equals, trial.expect, check.Commentf("%+v", trial))
		clamped := trial.length
		if tail := a.Len() - trial.offset; clamped > tail {
			clamped = tail
		}
		c.Check(r.Len(), check.Equals, a.Len()-clamped)
	}
	_, err := a.Deletion(10, 1)
	c.Check(errors.Is(err, ErrRange), check.Equals, true)
	_, err = a.Deletion(0, -1)
	c.Check(errors.Is(err, ErrRange), check.Equals, true)
}

func (s *editSuite) TestRepeat(c *check.C) {
	a := MustRead("ATG", DNA)
	for _, n := range []int{1, 2, 3, 17} {
		r, err := a.Repeat(n)
		c.Assert(err, check.IsNil)
		c.Check(r.Sequence(), check.Equals, strings.Repeat("ATG", n))
		c.Check(r.Len(), check.Equals, n*a.Len())
	}
	_, err := a.Repeat(0)
	c.Check(errors.Is(err, ErrRange), check.Equals, true)
}

func (s *editSuite) TestMaskCover(c *check.C) {
	a := MustRead("ATGCATGC", DNA)
	b := MustRead("AACCATNC", DNA)
	m, err := a.Mask(b, Strict)
	c.Assert(err, check.IsNil)
	c.Check(m.Sequence(), check.Equals, "A--CATGC")
	cv, err := a.Cover(b, Strict)
	c.Assert(err, check.IsNil)
	c.Check(cv.Sequence(), check.Equals, "AWSCATNC")
}

func (s *editSuite) TestMaskGaps(c *check.C) {
	m, err := MustRead("A-G-", DNA).Mask(MustRead("-AGN", DNA), Strict)
	c.Assert(err, check.IsNil)
	c.Check(m.Sequence(), check.Equals, "--G-")
	cv, err := MustRead("A-G-", DNA).Cover(MustRead("-AG-", DNA), Strict)
	c.Assert(err, check.IsNil)
	c.Check(cv.Sequence(), check.Equals, "AAG-")
}

func (s *editSuite) TestLengthPolicy(c *check.C) {
	a := MustRead("ATGCATGC", DNA)
	b := MustRead("AACC", DNA)
	_, err := a.Mask(b, Strict)
	c.Check(errors.Is(err, ErrLengthMismatch), check.Equals, true)
	_, err = b.Cover(a, Strict)
	c.Check(errors.Is(err, ErrLengthMismatch), check.Equals, true)

	m, err := a.Mask(b, Truncate)
	c.Assert(err, check.IsNil)
	c.Check(m.Sequence(), check.Equals, "A--C")
	cv, err := b.Cover(a, Truncate)
	c.Assert(err, check.IsNil)
	c.Check(cv.Sequence(), check.Equals, "AWSC")

	for _, name := range []string{"strict", "truncate"} {
		p, err := ParseLengthPolicy(name)
		c.Check(err, check.IsNil)
		c.Check(p.String(), check.Equals, name)
	}
	_, err = ParseLengthPolicy("pad")
	c.Check(err, check.NotNil)
}

func (s *editSuite) TestKindPreserved(c *check.C) {
	a := MustRead("AUG", RNA)
	r, err := a.Repeat(2)
	c.Assert(err, check.IsNil)
	c.Check(r.Sequence(), check.Equals, "AUGAUG")
	c.Check(a.Complement().Kind(), check.Equals, RNA)
}
