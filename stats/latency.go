package stats

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/zionmelson/shredstream-tui/types"
)

// LatencyStats aggregates shred propagation latency. Scalar aggregates are
// atomics so the reader never blocks the ingestion path; min/max use a
// compare-and-swap retry loop. Per-leader and per-region aggregates sit
// behind a read/write lock.
type LatencyStats struct {
	count atomic.Uint64
	sumUs atomic.Uint64
	minUs atomic.Uint64 // math.MaxUint64 until the first sample
	maxUs atomic.Uint64

	mu       sync.RWMutex
	byLeader map[string]*runningAvg
	byRegion map[string]*runningAvg
}

type runningAvg struct {
	count uint64
	sumUs uint64
}

func (a *runningAvg) avgMs() float64 {
	if a.count == 0 {
		return 0
	}
	return float64(a.sumUs) / float64(a.count) / 1000
}

func NewLatencyStats() *LatencyStats {
	s := &LatencyStats{
		byLeader: make(map[string]*runningAvg),
		byRegion: make(map[string]*runningAvg),
	}
	s.minUs.Store(math.MaxUint64)
	return s
}

// Observe records one latency sample.
func (s *LatencyStats) Observe(sample types.LatencySample) {
	us := sample.LatencyUs
	s.count.Add(1)
	s.sumUs.Add(us)

	for {
		cur := s.minUs.Load()
		if us >= cur || s.minUs.CompareAndSwap(cur, us) {
			break
		}
	}
	for {
		cur := s.maxUs.Load()
		if us <= cur || s.maxUs.CompareAndSwap(cur, us) {
			break
		}
	}

	if sample.Leader == "" && sample.Region == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sample.Leader != "" {
		a := s.byLeader[sample.Leader]
		if a == nil {
			a = &runningAvg{}
			s.byLeader[sample.Leader] = a
		}
		a.count++
		a.sumUs += us
	}
	if sample.Region != "" {
		a := s.byRegion[sample.Region]
		if a == nil {
			a = &runningAvg{}
			s.byRegion[sample.Region] = a
		}
		a.count++
		a.sumUs += us
	}
}

func (s *LatencyStats) Count() uint64 { return s.count.Load() }

// AvgMs returns the mean latency in milliseconds, 0 with no samples.
func (s *LatencyStats) AvgMs() float64 {
	n := s.count.Load()
	if n == 0 {
		return 0
	}
	return float64(s.sumUs.Load()) / float64(n) / 1000
}

// MinUs returns 0 with no samples; the MaxUint64 sentinel never escapes.
func (s *LatencyStats) MinUs() uint64 {
	if s.count.Load() == 0 {
		return 0
	}
	return s.minUs.Load()
}

func (s *LatencyStats) MaxUs() uint64 { return s.maxUs.Load() }

// LeaderAvgMs returns the mean latency for one leader, 0 when unseen.
func (s *LatencyStats) LeaderAvgMs(leader string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a := s.byLeader[leader]
	if a == nil {
		return 0
	}
	return a.avgMs()
}

// RegionAvgsMs snapshots the per-region mean latencies.
func (s *LatencyStats) RegionAvgsMs() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]float64, len(s.byRegion))
	for region, a := range s.byRegion {
		out[region] = a.avgMs()
	}
	return out
}
