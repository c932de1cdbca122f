package stats

import (
	"testing"

	"github.com/zionmelson/shredstream-tui/types"
)

func TestTurbineStatsEmpty(t *testing.T) {
	s := NewTurbineStats()
	if s.Count() != 0 || s.AvgIndex() != 0 || s.MinIndex() != 0 || s.MaxIndex() != 0 {
		t.Fatal("empty turbine stats must report zeros")
	}
}

func TestTurbineStatsLayerCollapse(t *testing.T) {
	s := NewTurbineStats()
	for _, layer := range []int{0, 1, 2, 3, 7} {
		s.Observe(types.TurbineInfo{Slot: 1, TreeIndex: 10, Layer: layer})
	}

	layers := s.LayerCounts()
	if layers[0] != 1 || layers[1] != 1 || layers[2] != 1 {
		t.Fatalf("layer buckets 0-2 = %v", layers)
	}
	// Layers 3 and above share the last bucket.
	if layers[3] != 2 {
		t.Fatalf("layer bucket 3+ = %d, want 2", layers[3])
	}
}

func TestTurbineStatsIndexAggregates(t *testing.T) {
	s := NewTurbineStats()
	s.Observe(types.TurbineInfo{TreeIndex: 200, Layer: 1})
	s.Observe(types.TurbineInfo{TreeIndex: 100, Layer: 1})
	s.Observe(types.TurbineInfo{TreeIndex: 300, Layer: 1})

	if got := s.MinIndex(); got != 100 {
		t.Fatalf("MinIndex = %d, want 100", got)
	}
	if got := s.MaxIndex(); got != 300 {
		t.Fatalf("MaxIndex = %d, want 300", got)
	}
	if got := s.AvgIndex(); got != 200 {
		t.Fatalf("AvgIndex = %v, want 200", got)
	}
	if got := len(s.History()); got != 3 {
		t.Fatalf("History len = %d, want 3", got)
	}
}
