package matchmap

import (
	"sort"
	"sync/atomic"
	"time"

	psort "github.com/exascience/pargo/sort"
	log "github.com/sirupsen/logrus"
)

// shiftSorter orders profile indices by match count, highest first.
// It implements psort.StableSorter.
type shiftSorter struct {
	idx     []int32
	profile []uint32
}

func (s shiftSorter) SequentialSort(i, j int) {
	idx, profile := s.idx[i:j], s.profile
	sort.SliceStable(idx, func(a, b int) bool {
		return profile[idx[a]] > profile[idx[b]]
	})
}

func (s shiftSorter) NewTemp() psort.StableSorter {
	return shiftSorter{make([]int32, len(s.idx)), s.profile}
}

func (s shiftSorter) Len() int {
	return len(s.idx)
}

func (s shiftSorter) Less(i, j int) bool {
	return s.profile[s.idx[i]] > s.profile[s.idx[j]]
}

func (s shiftSorter) Assign(p psort.StableSorter) func(i, j, len int) {
	dst, src := s.idx, p.(shiftSorter).idx
	return func(i, j, len int) {
		copy(dst[i:i+len], src[j:j+len])
	}
}

func (m *Map) rank() {
	m.rankOnce.Do(func() {
		t0 := time.Now()
		m.ranked = make([]int32, len(m.profile))
		for k := range m.ranked {
			m.ranked[k] = int32(k)
		}
		// stable, so equal counts stay in ascending shift order
		psort.StableSort(shiftSorter{m.ranked, m.profile})
		elapsed := time.Since(t0)
		atomic.StoreInt64(&m.rankNanos, int64(elapsed))
		log.Debugf("matchmap: ranked %d shifts in %v", len(m.ranked), elapsed)
	})
}

// Ranked returns every shift ordered by match count, highest first,
// with ties in ascending shift order. The first entry equals Best().
func (m *Map) Ranked() []Match {
	return m.Top(len(m.profile))
}

// Top returns the first n entries of Ranked.
func (m *Map) Top(n int) []Match {
	m.rank()
	if n > len(m.ranked) {
		n = len(m.ranked)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Match, n)
	for i, k := range m.ranked[:n] {
		out[i] = Match{Position: int(k) - (m.qlen - 1), Matches: int(m.profile[k])}
	}
	return out
}
