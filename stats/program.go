package stats

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/zionmelson/shredstream-tui/programs"
)

// ProgramActivity is the running activity record for one known program.
type ProgramActivity struct {
	ProgramID string
	Name      string
	Category  programs.Category
	TxnCount  uint64
	LastSeen  time.Time
}

// ProgramStats tracks per-program activity plus the four category totals.
// A transaction matching programs of two categories increments both.
type ProgramStats struct {
	mu       sync.RWMutex
	activity map[solana.PublicKey]*ProgramActivity

	dexTxns     atomic.Uint64
	lendingTxns atomic.Uint64
	mevTxns     atomic.Uint64
	stakingTxns atomic.Uint64
}

func NewProgramStats() *ProgramStats {
	return &ProgramStats{
		activity: make(map[solana.PublicKey]*ProgramActivity),
	}
}

// Record counts one transaction touching the given known program.
func (s *ProgramStats) Record(key solana.PublicKey, info programs.ProgramInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.activity[key]
	if a == nil {
		a = &ProgramActivity{
			ProgramID: key.String(),
			Name:      info.Name,
			Category:  info.Category,
		}
		s.activity[key] = a
	}
	a.TxnCount++
	a.LastSeen = time.Now()
}

// CountCategory bumps the per-category transaction counter. Called once per
// matched category per transaction, never per matched program.
func (s *ProgramStats) CountCategory(cat programs.Category) {
	switch cat {
	case programs.CategoryDex:
		s.dexTxns.Add(1)
	case programs.CategoryLending:
		s.lendingTxns.Add(1)
	case programs.CategoryMev:
		s.mevTxns.Add(1)
	case programs.CategoryStaking:
		s.stakingTxns.Add(1)
	}
}

func (s *ProgramStats) DexTxns() uint64     { return s.dexTxns.Load() }
func (s *ProgramStats) LendingTxns() uint64 { return s.lendingTxns.Load() }
func (s *ProgramStats) MevTxns() uint64     { return s.mevTxns.Load() }
func (s *ProgramStats) StakingTxns() uint64 { return s.stakingTxns.Load() }

// Activity snapshots the per-program records.
func (s *ProgramStats) Activity() []ProgramActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ProgramActivity, 0, len(s.activity))
	for _, a := range s.activity {
		out = append(out, *a)
	}
	return out
}
