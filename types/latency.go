package types

import "time"

// LatencySample is one shred propagation observation in microseconds.
// Leader, Region and TurbineIndex are optional; empty string or -1 mean the
// feed did not carry them.
type LatencySample struct {
	Slot         uint64
	LatencyUs    uint64
	Leader       string
	Region       string
	TurbineIndex int
}

// TurbineInfo is a broadcast-tree placement observation for one message.
type TurbineInfo struct {
	Slot       uint64
	ShredIndex uint32
	TreeIndex  uint32
	Layer      int
	ReceivedAt time.Time
	Source     string
}
