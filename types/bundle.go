package types

import "time"

// BundleInfo is a detected tip-bundle: the transactions of one slot batch
// that referenced a Jito tip-collection account.
type BundleInfo struct {
	Slot        uint64
	TxnCount    uint32
	TipLamports uint64
	TipAccount  string
	Signatures  []string
	Timestamp   time.Time
}

// SandwichPattern is a front-run/victim/back-run triple. The aggregate is
// reserved surface: nothing currently produces these records.
type SandwichPattern struct {
	Slot        uint64
	VictimSig   string
	FrontrunSig string
	BackrunSig  string
	Timestamp   time.Time
}
