package matchmap

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/ntseq/ntseq/nt"
	"gopkg.in/check.v1"
)

type rankSuite struct{}

var _ = check.Suite(&rankSuite{})

func (s *rankSuite) TestTop(c *check.C) {
	m, err := New(nt.MustRead("ATG", nt.DNA), nt.MustRead("ATGATG", nt.DNA), Options{})
	c.Assert(err, check.IsNil)
	c.Check(m.Top(3), check.DeepEquals, []Match{
		{Position: 0, Matches: 3},
		{Position: 3, Matches: 3},
		{Position: -2, Matches: 0},
	})
	c.Check(m.Top(0), check.HasLen, 0)
	c.Check(m.Top(100), check.HasLen, 8)
	c.Check(m.Ranked()[0], check.Equals, m.Best())
}

func (s *rankSuite) TestRankedOrder(c *check.C) {
	rnd := rand.New(rand.NewSource(6))
	query := randomSeq(rnd, "ACGT", 40)
	target := randomSeq(rnd, "ACGT", 20000)
	m, err := New(query, target, Options{})
	c.Assert(err, check.IsNil)
	ranked := m.Ranked()
	c.Assert(ranked, check.HasLen, query.Len()+target.Len()-1)
	c.Check(ranked[0], check.Equals, m.Best())

	expect := make([]Match, 0, len(ranked))
	lo, hi := m.Shifts()
	for shift := lo; shift <= hi; shift++ {
		expect = append(expect, Match{Position: shift, Matches: m.Matches(shift)})
	}
	sort.SliceStable(expect, func(i, j int) bool { return expect[i].Matches > expect[j].Matches })
	c.Check(ranked, check.DeepEquals, expect)
}

func (s *rankSuite) TestConcurrentTopAndStats(c *check.C) {
	rnd := rand.New(rand.NewSource(8))
	m, err := New(randomSeq(rnd, "ACGT", 30), randomSeq(rnd, "ACGT", 5000), Options{})
	c.Assert(err, check.IsNil)
	var wg sync.WaitGroup
	tops := make([][]Match, 4)
	for i := range tops {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			tops[i] = m.Top(3)
		}()
		go func() {
			defer wg.Done()
			c.Check(m.Stats().RankTime >= 0, check.Equals, true)
		}()
	}
	wg.Wait()
	for _, top := range tops {
		c.Check(top, check.DeepEquals, tops[0])
	}
	c.Check(tops[0][0], check.Equals, m.Best())
}
