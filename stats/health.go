package stats

import "sync/atomic"

// NetworkHealth tracks shred recovery and heartbeat ratios. With no samples
// the recovery rate reads 0% (nothing needed recovery) and the heartbeat
// rate 100% (nothing has failed yet); both defaults are deliberate.
type NetworkHealth struct {
	recovered atomic.Uint64
	direct    atomic.Uint64

	heartbeatOK   atomic.Uint64
	heartbeatFail atomic.Uint64
}

func NewNetworkHealth() *NetworkHealth {
	return &NetworkHealth{}
}

// RecordReceive counts one message as recovered or directly received.
func (h *NetworkHealth) RecordReceive(recovered bool) {
	if recovered {
		h.recovered.Add(1)
	} else {
		h.direct.Add(1)
	}
}

func (h *NetworkHealth) RecordHeartbeat(ok bool) {
	if ok {
		h.heartbeatOK.Add(1)
	} else {
		h.heartbeatFail.Add(1)
	}
}

func (h *NetworkHealth) Recovered() uint64 { return h.recovered.Load() }
func (h *NetworkHealth) Direct() uint64    { return h.direct.Load() }

// RecoveryRate is the share of messages that arrived via recovery, percent.
func (h *NetworkHealth) RecoveryRate() float64 {
	rec := h.recovered.Load()
	total := rec + h.direct.Load()
	if total == 0 {
		return 0
	}
	return float64(rec) / float64(total) * 100
}

// HeartbeatRate is the share of successful heartbeats, percent.
func (h *NetworkHealth) HeartbeatRate() float64 {
	ok := h.heartbeatOK.Load()
	total := ok + h.heartbeatFail.Load()
	if total == 0 {
		return 100
	}
	return float64(ok) / float64(total) * 100
}
