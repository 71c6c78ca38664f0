// Package matchmap counts, for every alignment shift between a query
// and a target sequence, the positions where the two hold the same
// symbol.
//
// A shift d compares query[i] with target[i+d]. Shifts run from
// -(len(query)-1), where only the last query symbol overlaps the first
// target symbol, to len(target)-1.
package matchmap

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ntseq/ntseq/nt"
	log "github.com/sirupsen/logrus"
)

var ErrEmptySequence = errors.New("cannot map an empty sequence")

// Match is a shift reported as the target position where the query's
// first symbol lands, along with its match count.
type Match struct {
	Position int
	Matches  int
}

type Options struct {
	// Number of goroutines accumulating the profile. Zero means
	// runtime.NumCPU().
	Workers int

	// If non-nil, called (possibly concurrently) as query positions
	// are processed. The sum of all deltas equals total.
	Progress func(delta, total int)
}

type Stats struct {
	PrepareTime time.Duration
	SearchTime  time.Duration
	RankTime    time.Duration
}

// Map is the diagonal match profile of a query against a target. It
// is read-only once built.
type Map struct {
	rankNanos int64 // atomic, first for 64-bit alignment; zero until ranked

	qlen, tlen int
	profile    []uint32 // index = shift + qlen - 1
	histogram  []uint64
	best       Match
	stats      Stats

	rankOnce sync.Once
	ranked   []int32
}

// New computes the full profile of query against target.
//
// Query and target positions are bucketed by symbol, and only pairs
// from the same bucket are visited, so the cost is the sum over
// symbols of |query bucket| * |target bucket| rather than
// len(query) * len(target).
func New(query, target *nt.Seq, opts Options) (*Map, error) {
	if query.Len() == 0 || target.Len() == 0 {
		return nil, fmt.Errorf("%w (query length %d, target length %d)", ErrEmptySequence, query.Len(), target.Len())
	}
	if int64(query.Len())+int64(target.Len()) > 1<<31-1 {
		return nil, fmt.Errorf("query length %d + target length %d exceeds limit", query.Len(), target.Len())
	}
	m := &Map{qlen: query.Len(), tlen: target.Len()}

	t0 := time.Now()
	qpos := bucket(query)
	tpos := bucket(target)
	m.stats.PrepareTime = time.Since(t0)
	log.Debugf("matchmap: bucketed %d query and %d target positions in %v", m.qlen, m.tlen, m.stats.PrepareTime)

	t0 = time.Now()
	m.profile = make([]uint32, m.qlen+m.tlen-1)
	m.accumulate(qpos, tpos, opts)
	m.stats.SearchTime = time.Since(t0)
	log.Debugf("matchmap: accumulated %d shifts in %v", len(m.profile), m.stats.SearchTime)

	m.histogram = make([]uint64, m.qlen+1)
	m.best = Match{Position: -(m.qlen - 1), Matches: -1}
	for k, n := range m.profile {
		m.histogram[n]++
		if int(n) > m.best.Matches {
			m.best = Match{Position: k - (m.qlen - 1), Matches: int(n)}
		}
	}
	return m, nil
}

// bucket lists the positions of each symbol in ascending order.
func bucket(seq *nt.Seq) [nt.NumSymbols][]int32 {
	var count [nt.NumSymbols]int
	for i, n := 0, seq.Len(); i < n; i++ {
		count[seq.At(i)]++
	}
	var pos [nt.NumSymbols][]int32
	for sym, n := range count {
		if n > 0 {
			pos[sym] = make([]int32, 0, n)
		}
	}
	for i, n := 0, seq.Len(); i < n; i++ {
		sym := seq.At(i)
		pos[sym] = append(pos[sym], int32(i))
	}
	return pos
}

// accumulate splits the profile into contiguous shift ranges, one per
// worker. Each worker only increments entries inside its own range, so
// no synchronization is needed on the profile itself.
func (m *Map) accumulate(qpos, tpos [nt.NumSymbols][]int32, opts Options) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(m.profile) {
		workers = len(m.profile)
	}
	chunk := (len(m.profile) + workers - 1) / workers

	total := m.qlen * workers
	var reported int64
	progress := func(delta int) {
		if opts.Progress != nil && delta > 0 {
			atomic.AddInt64(&reported, int64(delta))
			opts.Progress(delta, total)
		}
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(m.profile) {
			hi = len(m.profile)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			done := 0
			for sym := range qpos {
				if len(tpos[sym]) == 0 {
					done += len(qpos[sym])
					continue
				}
				m.accumulateRange(qpos[sym], tpos[sym], lo, hi, func() {
					if done++; done >= 4096 {
						progress(done)
						done = 0
					}
				})
			}
			progress(done)
		}()
	}
	wg.Wait()
	if opts.Progress != nil && int(reported) != total {
		log.Warnf("matchmap: progress reported %d of %d", reported, total)
	}
}

// accumulateRange adds the contribution of one symbol's query and
// target positions to profile entries lo..hi-1.
func (m *Map) accumulateRange(qpos, tpos []int32, lo, hi int, tick func()) {
	profile := m.profile[:hi]
	for _, i := range qpos {
		base := m.qlen - 1 - int(i)
		// target positions landing in [lo, hi)
		jlo, jhi := lo-base, hi-base
		x := sort.Search(len(tpos), func(x int) bool { return int(tpos[x]) >= jlo })
		for ; x < len(tpos) && int(tpos[x]) < jhi; x++ {
			profile[base+int(tpos[x])]++
		}
		tick()
	}
}

// Shifts returns the lowest and highest shift in the profile.
func (m *Map) Shifts() (lo, hi int) {
	return -(m.qlen - 1), m.tlen - 1
}

// Matches returns the match count at the given shift.
func (m *Map) Matches(shift int) int {
	return int(m.profile[shift+m.qlen-1])
}

// Profile returns a copy of the match counts for every shift, lowest
// shift first.
func (m *Map) Profile() []uint32 {
	return append([]uint32(nil), m.profile...)
}

// Histogram returns, for k in 0..len(query), the number of shifts with
// exactly k matches.
func (m *Map) Histogram() []uint64 {
	return append([]uint64(nil), m.histogram...)
}

// Best returns the shift with the most matches. Ties go to the lowest
// shift.
func (m *Map) Best() Match {
	return m.best
}

func (m *Map) QueryLen() int  { return m.qlen }
func (m *Map) TargetLen() int { return m.tlen }

// Stats returns phase timings. RankTime stays zero until Ranked or Top
// has been called.
func (m *Map) Stats() Stats {
	stats := m.stats
	stats.RankTime = time.Duration(atomic.LoadInt64(&m.rankNanos))
	return stats
}
