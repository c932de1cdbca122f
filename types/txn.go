package types

import "time"

// TxnSample is a sampled transaction kept for display. The sample ring is
// biased toward DEX and tip-touching transactions.
type TxnSample struct {
	Slot       uint64
	Signature  string
	ReceivedAt time.Time
	Programs   []string
	IsBundle   bool
	// TipLamports is only set when the feed computed it; a detected tip
	// account reference alone records 0.
	TipLamports uint64
}
