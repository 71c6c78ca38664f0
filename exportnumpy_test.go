package main

import (
	"bytes"
	"os"

	"github.com/kshedden/gonpy"
	"gopkg.in/check.v1"
)

type exportSuite struct{}

var _ = check.Suite(&exportSuite{})

func (s *exportSuite) TestMapToNumpy(c *check.C) {
	tmpdir := c.MkDir()
	exited := (&mapper{}).RunCommand("map", []string{"-query-file", "testdata/query.fa", "-target", "testdata/targets.fa", "-o", tmpdir + "/result.gob.gz"}, nil, &bytes.Buffer{}, os.Stderr)
	c.Assert(exited, check.Equals, 0)

	var output bytes.Buffer
	exited = (&exportNumpy{}).RunCommand("export-numpy", []string{"-i", tmpdir + "/result.gob.gz", "-what", "histogram"}, nil, &output, os.Stderr)
	c.Check(exited, check.Equals, 0)
	npy, err := gonpy.NewReader(&output)
	c.Assert(err, check.IsNil)
	c.Check(npy.Shape, check.DeepEquals, []int{2, 13})
	hist, err := npy.GetUint64()
	c.Assert(err, check.IsNil)
	c.Check(hist[:13], check.DeepEquals, []uint64{9, 19, 2, 0, 0, 2, 0, 0, 0, 2, 0, 0, 2})
	c.Check(hist[13:], check.DeepEquals, []uint64{21, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 2})

	// profile rows are padded to the longest target
	f, err := os.Open(tmpdir + "/result.gob.gz")
	c.Assert(err, check.IsNil)
	defer f.Close()
	output.Reset()
	exited = (&exportNumpy{}).RunCommand("export-numpy", []string{"-o", tmpdir + "/profile.npy"}, f, &output, os.Stderr)
	c.Check(exited, check.Equals, 0)
	c.Check(output.Len(), check.Equals, 0)
	npyf, err := os.Open(tmpdir + "/profile.npy")
	c.Assert(err, check.IsNil)
	defer npyf.Close()
	npy, err = gonpy.NewReader(npyf)
	c.Assert(err, check.IsNil)
	c.Check(npy.Shape, check.DeepEquals, []int{2, 36})
	profile, err := npy.GetUint32()
	c.Assert(err, check.IsNil)
	var total [2]uint32
	for row := 0; row < 2; row++ {
		for col := 0; col < 36; col++ {
			total[row] += profile[row*36+col]
		}
	}
	for col := 27; col < 36; col++ {
		c.Check(profile[36+col], check.Equals, uint32(0))
	}
	c.Check(profile[5+11], check.Equals, uint32(12))
	c.Check(profile[36+0+11], check.Equals, uint32(12))
	c.Check(total[0], check.Equals, uint32(75))
}

func (s *exportSuite) TestBadWhat(c *check.C) {
	exited := (&exportNumpy{}).RunCommand("export-numpy", []string{"-what", "everything"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	c.Check(exited, check.Equals, 2)
}
