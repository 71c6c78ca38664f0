package main

import (
	"bytes"
	"io/ioutil"
	"os"

	"gopkg.in/check.v1"
)

type diffSuite struct{}

var _ = check.Suite(&diffSuite{})

func (s *diffSuite) TestDiff(c *check.C) {
	var output bytes.Buffer
	exited := (&diffFasta{}).RunCommand("diff", []string{"-sequence", "chr2", "-offset", "1000", "testdata/f1.fa", "testdata/f2.fa"}, nil, &output, os.Stderr)
	c.Check(exited, check.Equals, 0)
	c.Check("\n"+output.String(), check.Equals, `
chr2:g.1008C>G	chr2	1008	C	G
chr2:g.1028_1029delinsTT	chr2	1028	AA	TT
chr2:g.1032_1033insA	chr2	1033		A
`)
}

func (s *diffSuite) TestCompatible(c *check.C) {
	tempdir := c.MkDir()
	err := ioutil.WriteFile(tempdir+"/a.fa", []byte(">ref\nACGTACGTAC\n"), 0700)
	c.Assert(err, check.IsNil)
	err = ioutil.WriteFile(tempdir+"/b.fa", []byte(">alt\nACGTRCGTAC\n"), 0700)
	c.Assert(err, check.IsNil)

	var output bytes.Buffer
	exited := (&diffFasta{}).RunCommand("diff", []string{tempdir + "/a.fa", tempdir + "/b.fa"}, nil, &output, os.Stderr)
	c.Check(exited, check.Equals, 0)
	c.Check(output.String(), check.Equals, "ref:g.5A>R\tref\t5\tA\tR\tcompatible\n")

	output.Reset()
	exited = (&diffFasta{}).RunCommand("diff", []string{tempdir + "/a.fa", tempdir + "/a.fa"}, nil, &output, os.Stderr)
	c.Check(exited, check.Equals, 0)
	c.Check(output.String(), check.Equals, "")
}

func (s *diffSuite) TestUsage(c *check.C) {
	exited := (&diffFasta{}).RunCommand("diff", []string{"testdata/f1.fa"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	c.Check(exited, check.Equals, 2)
	exited = (&diffFasta{}).RunCommand("diff", []string{"-", "-"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	c.Check(exited, check.Equals, 2)
	exited = (&diffFasta{}).RunCommand("diff", []string{"testdata/f1.fa", "testdata/nonexistent.fa"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	c.Check(exited, check.Equals, 1)
}
