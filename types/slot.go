package types

import "time"

// SlotInfo is one ingested slot batch with entry and transaction counts.
type SlotInfo struct {
	Slot       uint64
	EntryCount uint64
	TxnCount   uint64
	// ReceivedAt comes from time.Now() and therefore carries both the
	// wall-clock and the monotonic reading.
	ReceivedAt time.Time
	// FirstShredDelay is the proxy-to-observer propagation delay for the
	// first shred of the slot. Zero when the feed did not carry timing.
	FirstShredDelay time.Duration
	// Leader is the announced slot leader, empty when unknown.
	Leader string

	DexTxnCount    uint64
	BundleTxnCount uint64
}

// LeaderSlotInfo is one slot attributed to a leader in the recent history.
type LeaderSlotInfo struct {
	Slot      uint64
	Leader    string
	TxnCount  uint64
	Skipped   bool
	Timestamp time.Time
}
