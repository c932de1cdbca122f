package stream

import "github.com/zionmelson/shredstream-tui/types"

// MessageKind discriminates client -> presentation notifications.
type MessageKind int

const (
	KindEntries MessageKind = iota
	KindConnection
	KindError
)

// Message is a control-plane notification to the presentation layer. It is a
// liveness signal, not the data path: aggregate state is already updated
// when a Message is sent, so a dropped Message loses nothing.
type Message struct {
	Kind MessageKind

	// KindEntries
	Slot       uint64
	EntryCount int
	TxnCount   int

	// KindConnection
	State types.ConnectionState

	// KindError
	Err string
}
