package stats

import (
	"math"
	"sync/atomic"

	"github.com/zionmelson/shredstream-tui/config"
	"github.com/zionmelson/shredstream-tui/types"
)

// TurbineLayerBuckets is the fixed layer histogram size: layers 0, 1, 2 and
// "3 or more" collapsed into the last bucket.
const TurbineLayerBuckets = 4

// TurbineStats tracks where in the broadcast tree this observer sits.
type TurbineStats struct {
	count  atomic.Uint64
	sumIdx atomic.Uint64
	minIdx atomic.Uint64 // math.MaxUint64 until the first sample
	maxIdx atomic.Uint64

	layers [TurbineLayerBuckets]atomic.Uint64

	history *Ring[types.TurbineInfo]
}

func NewTurbineStats() *TurbineStats {
	s := &TurbineStats{
		history: NewRing[types.TurbineInfo](config.MaxTurbineHistory),
	}
	s.minIdx.Store(math.MaxUint64)
	return s
}

func (s *TurbineStats) Observe(info types.TurbineInfo) {
	idx := uint64(info.TreeIndex)
	s.count.Add(1)
	s.sumIdx.Add(idx)

	for {
		cur := s.minIdx.Load()
		if idx >= cur || s.minIdx.CompareAndSwap(cur, idx) {
			break
		}
	}
	for {
		cur := s.maxIdx.Load()
		if idx <= cur || s.maxIdx.CompareAndSwap(cur, idx) {
			break
		}
	}

	layer := info.Layer
	if layer >= TurbineLayerBuckets-1 {
		layer = TurbineLayerBuckets - 1
	}
	if layer < 0 {
		layer = 0
	}
	s.layers[layer].Add(1)

	s.history.Push(info)
}

func (s *TurbineStats) Count() uint64 { return s.count.Load() }

func (s *TurbineStats) AvgIndex() float64 {
	n := s.count.Load()
	if n == 0 {
		return 0
	}
	return float64(s.sumIdx.Load()) / float64(n)
}

func (s *TurbineStats) MinIndex() uint64 {
	if s.count.Load() == 0 {
		return 0
	}
	return s.minIdx.Load()
}

func (s *TurbineStats) MaxIndex() uint64 { return s.maxIdx.Load() }

// LayerCounts returns the four layer buckets {0, 1, 2, 3+}.
func (s *TurbineStats) LayerCounts() [TurbineLayerBuckets]uint64 {
	var out [TurbineLayerBuckets]uint64
	for i := range s.layers {
		out[i] = s.layers[i].Load()
	}
	return out
}

func (s *TurbineStats) History() []types.TurbineInfo {
	return s.history.Items()
}
