package stats

import (
	"sync/atomic"

	"github.com/zionmelson/shredstream-tui/config"
	"github.com/zionmelson/shredstream-tui/types"
)

// CompetitionStats tracks MEV competition signals: tip bundles, duplicate
// submissions, and sandwich patterns. The sandwich counter and ring are
// reserved surface with no producing algorithm.
type CompetitionStats struct {
	bundleCount    atomic.Uint64
	tipLamports    atomic.Uint64
	duplicateCount atomic.Uint64
	sandwichCount  atomic.Uint64

	bundles    *Ring[types.BundleInfo]
	sandwiches *Ring[types.SandwichPattern]
}

func NewCompetitionStats() *CompetitionStats {
	return &CompetitionStats{
		bundles:    NewRing[types.BundleInfo](config.MaxRecentBundles),
		sandwiches: NewRing[types.SandwichPattern](config.MaxRecentSandwiches),
	}
}

func (s *CompetitionStats) AddBundle(b types.BundleInfo) {
	s.bundleCount.Add(1)
	s.tipLamports.Add(b.TipLamports)
	s.bundles.Push(b)
}

func (s *CompetitionStats) AddDuplicate() {
	s.duplicateCount.Add(1)
}

func (s *CompetitionStats) AddSandwich(p types.SandwichPattern) {
	s.sandwichCount.Add(1)
	s.sandwiches.Push(p)
}

func (s *CompetitionStats) BundleCount() uint64    { return s.bundleCount.Load() }
func (s *CompetitionStats) TipLamports() uint64    { return s.tipLamports.Load() }
func (s *CompetitionStats) DuplicateCount() uint64 { return s.duplicateCount.Load() }
func (s *CompetitionStats) SandwichCount() uint64  { return s.sandwichCount.Load() }

func (s *CompetitionStats) RecentBundles() []types.BundleInfo {
	return s.bundles.Items()
}

func (s *CompetitionStats) RecentSandwiches() []types.SandwichPattern {
	return s.sandwiches.Items()
}
