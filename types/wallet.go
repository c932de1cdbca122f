package types

import "time"

// WalletTxn is an observed transaction touching the monitored address.
// Success is an approximation: shred data carries no execution outcome.
type WalletTxn struct {
	Slot      uint64
	Signature string
	Timestamp time.Time
	Success   bool
	Programs  []string
}
