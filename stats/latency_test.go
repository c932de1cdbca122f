package stats

import (
	"testing"

	"github.com/zionmelson/shredstream-tui/types"
)

func TestLatencyStatsEmpty(t *testing.T) {
	s := NewLatencyStats()

	if s.Count() != 0 {
		t.Fatalf("Count = %d, want 0", s.Count())
	}
	if s.AvgMs() != 0 || s.MinUs() != 0 || s.MaxUs() != 0 {
		t.Fatalf("empty stats must report zeros, got avg=%v min=%d max=%d",
			s.AvgMs(), s.MinUs(), s.MaxUs())
	}
}

func TestLatencyStatsMinMaxAvg(t *testing.T) {
	s := NewLatencyStats()
	for _, us := range []uint64{500, 100, 900} {
		s.Observe(types.LatencySample{Slot: 1, LatencyUs: us})
	}

	if got := s.MinUs(); got != 100 {
		t.Fatalf("MinUs = %d, want 100", got)
	}
	if got := s.MaxUs(); got != 900 {
		t.Fatalf("MaxUs = %d, want 900", got)
	}
	if got := s.AvgMs(); got != 0.5 {
		t.Fatalf("AvgMs = %v, want 0.5", got)
	}
	if got := s.Count(); got != 3 {
		t.Fatalf("Count = %d, want 3", got)
	}
}

func TestLatencyStatsPerLeaderPerRegion(t *testing.T) {
	s := NewLatencyStats()
	s.Observe(types.LatencySample{LatencyUs: 1000, Leader: "L1", Region: "ams"})
	s.Observe(types.LatencySample{LatencyUs: 3000, Leader: "L1", Region: "ams"})
	s.Observe(types.LatencySample{LatencyUs: 2000, Leader: "L2"})

	if got := s.LeaderAvgMs("L1"); got != 2.0 {
		t.Fatalf("LeaderAvgMs(L1) = %v, want 2", got)
	}
	if got := s.LeaderAvgMs("unseen"); got != 0 {
		t.Fatalf("LeaderAvgMs(unseen) = %v, want 0", got)
	}

	regions := s.RegionAvgsMs()
	if got := regions["ams"]; got != 2.0 {
		t.Fatalf("RegionAvgsMs[ams] = %v, want 2", got)
	}
	if _, ok := regions[""]; ok {
		t.Fatal("empty region must not be tracked")
	}
}
