package stats

import "sync/atomic"

// ShredMetrics tracks feed throughput. Window counters are zeroed by
// ResetWindow; total counters only ever grow.
type ShredMetrics struct {
	// Current window
	received   atomic.Uint64 // stream messages
	entryCount atomic.Uint64
	txnCount   atomic.Uint64

	// Cumulative
	totalReceived atomic.Uint64
	totalEntries  atomic.Uint64
	totalTxns     atomic.Uint64
}

func NewShredMetrics() *ShredMetrics {
	return &ShredMetrics{}
}

// AddBatch records one decoded slot batch.
func (m *ShredMetrics) AddBatch(entryCount, txnCount uint64) {
	m.received.Add(1)
	m.entryCount.Add(entryCount)
	m.txnCount.Add(txnCount)
	m.totalReceived.Add(1)
	m.totalEntries.Add(entryCount)
	m.totalTxns.Add(txnCount)
}

func (m *ShredMetrics) Received() uint64   { return m.received.Load() }
func (m *ShredMetrics) EntryCount() uint64 { return m.entryCount.Load() }
func (m *ShredMetrics) TxnCount() uint64   { return m.txnCount.Load() }

func (m *ShredMetrics) TotalReceived() uint64 { return m.totalReceived.Load() }
func (m *ShredMetrics) TotalEntries() uint64  { return m.totalEntries.Load() }
func (m *ShredMetrics) TotalTxns() uint64     { return m.totalTxns.Load() }

// ShredsPerSec is the window message rate; 0 for a non-positive window.
func (m *ShredMetrics) ShredsPerSec(windowSecs float64) float64 {
	return rate(m.received.Load(), windowSecs)
}

func (m *ShredMetrics) EntriesPerSec(windowSecs float64) float64 {
	return rate(m.entryCount.Load(), windowSecs)
}

func (m *ShredMetrics) TxnsPerSec(windowSecs float64) float64 {
	return rate(m.txnCount.Load(), windowSecs)
}

// ResetWindow zeroes window counters only; cumulative totals are untouched.
func (m *ShredMetrics) ResetWindow() {
	m.received.Store(0)
	m.entryCount.Store(0)
	m.txnCount.Store(0)
}

func rate(count uint64, secs float64) float64 {
	if secs <= 0 {
		return 0
	}
	return float64(count) / secs
}
