package stream

import (
	MapSet "github.com/deckarep/golang-set/v2"

	"github.com/zionmelson/shredstream-tui/config"
)

// DuplicateDetector is a bounded-memory membership test for transaction
// signatures seen during the current ingestion session. Every
// config.DedupCheckInterval observations the set is cleared if it has grown
// past config.DedupMaxEntries, which bounds memory at the cost of
// undercounting duplicates across the clear boundary.
type DuplicateDetector struct {
	seen         MapSet.Set[string]
	observations uint64
}

func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{
		seen: MapSet.NewSet[string](),
	}
}

// Observe reports whether sig was already seen, inserting it if not.
func (d *DuplicateDetector) Observe(sig string) bool {
	d.observations++
	dup := d.seen.Contains(sig)
	if !dup {
		d.seen.Add(sig)
	}
	if d.observations%config.DedupCheckInterval == 0 && d.seen.Cardinality() > config.DedupMaxEntries {
		d.seen.Clear()
	}
	return dup
}

func (d *DuplicateDetector) Len() int {
	return d.seen.Cardinality()
}
