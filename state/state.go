package state

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zionmelson/shredstream-tui/config"
	"github.com/zionmelson/shredstream-tui/stats"
	"github.com/zionmelson/shredstream-tui/types"
)

// AppState is the single process-lifetime owner of every tracker plus the
// connection/session fields. It is constructed once at startup and shared by
// the ingestion goroutine (writer) and the presentation loop (reader). The
// UI-only fields (tab, scroll, help) are mutated by the presentation side
// only, so the two roles never contend on the same field.
type AppState struct {
	ProxyURL string

	// Trackers, updated by the ingestion path and read by the UI.
	Metrics     *stats.ShredMetrics
	Latency     *stats.LatencyStats
	Turbine     *stats.TurbineStats
	Leaders     *stats.LeaderTracker
	Programs    *stats.ProgramStats
	Competition *stats.CompetitionStats
	Wallet      *stats.WalletMonitor
	Health      *stats.NetworkHealth

	SlotHistory *stats.Ring[types.SlotInfo]
	TxnSamples  *stats.Ring[types.TxnSample]

	logs *stats.Ring[types.LogEntry]

	// Session fields guarded by mu.
	mu          sync.RWMutex
	connState   types.ConnectionState
	connectedAt time.Time
	windowStart time.Time

	reconnects  atomic.Uint64
	currentSlot atomic.Uint64

	startTime time.Time

	// UI-only fields, also behind mu; never touched by the ingestion path.
	selectedTab  int
	scrollOffset int
	showHelp     bool
}

func New(proxyURL string) *AppState {
	now := time.Now()
	return &AppState{
		ProxyURL:    proxyURL,
		Metrics:     stats.NewShredMetrics(),
		Latency:     stats.NewLatencyStats(),
		Turbine:     stats.NewTurbineStats(),
		Leaders:     stats.NewLeaderTracker(),
		Programs:    stats.NewProgramStats(),
		Competition: stats.NewCompetitionStats(),
		Wallet:      stats.NewWalletMonitor(),
		Health:      stats.NewNetworkHealth(),
		SlotHistory: stats.NewRing[types.SlotInfo](config.MaxSlotHistory),
		TxnSamples:  stats.NewRing[types.TxnSample](config.MaxTxnSamples),
		logs:        stats.NewRing[types.LogEntry](config.MaxLogEntries),
		connState:   types.Disconnected(),
		windowStart: now,
		startTime:   now,
	}
}

// Log appends one entry to the bounded diagnostic ring.
func (s *AppState) Log(level types.LogLevel, format string, args ...any) {
	s.logs.Push(types.LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   fmt.Sprintf(format, args...),
	})
}

func (s *AppState) LogDebug(format string, args ...any) { s.Log(types.LevelDebug, format, args...) }
func (s *AppState) LogInfo(format string, args ...any)  { s.Log(types.LevelInfo, format, args...) }
func (s *AppState) LogWarn(format string, args ...any)  { s.Log(types.LevelWarn, format, args...) }
func (s *AppState) LogError(format string, args ...any) { s.Log(types.LevelError, format, args...) }

func (s *AppState) Logs() []types.LogEntry {
	return s.logs.Items()
}

// SetConnectionState transitions the session phase. Re-setting the same
// state is a no-op; a genuine transition logs at INFO and, when entering
// Connected, stamps the connect time used for uptime reporting.
func (s *AppState) SetConnectionState(next types.ConnectionState) {
	s.mu.Lock()
	if s.connState == next {
		s.mu.Unlock()
		return
	}
	s.connState = next
	if next.Phase == types.PhaseConnected {
		s.connectedAt = time.Now()
	}
	s.mu.Unlock()

	s.LogInfo("Connection state: %s", next)
}

func (s *AppState) ConnectionState() types.ConnectionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connState
}

// ConnectionDuration reports how long the current Connected phase has held,
// false if never connected.
func (s *AppState) ConnectionDuration() (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.connectedAt.IsZero() {
		return 0, false
	}
	return time.Since(s.connectedAt), true
}

func (s *AppState) AddReconnect() {
	s.reconnects.Add(1)
}

func (s *AppState) ReconnectCount() uint64 {
	return s.reconnects.Load()
}

// AddSlot records one decoded slot batch: advances the current slot (max
// only, never regresses), appends to the bounded history, and folds the
// counts into ShredMetrics.
func (s *AppState) AddSlot(info types.SlotInfo) {
	for {
		cur := s.currentSlot.Load()
		if info.Slot <= cur || s.currentSlot.CompareAndSwap(cur, info.Slot) {
			break
		}
	}

	s.SlotHistory.Push(info)
	s.Metrics.AddBatch(info.EntryCount, info.TxnCount)
}

func (s *AppState) CurrentSlot() uint64 {
	return s.currentSlot.Load()
}

func (s *AppState) AddTxnSample(sample types.TxnSample) {
	s.TxnSamples.Push(sample)
}

func (s *AppState) Uptime() time.Duration {
	return time.Since(s.startTime)
}

func (s *AppState) MetricsWindowSecs() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.windowStart).Seconds()
}

// ResetMetricsWindow restarts the window clock and zeroes ShredMetrics'
// window counters. Cumulative totals and every other tracker are untouched.
func (s *AppState) ResetMetricsWindow() {
	s.mu.Lock()
	s.windowStart = time.Now()
	s.mu.Unlock()
	s.Metrics.ResetWindow()
}

// UI-only operations below; called from the presentation loop.

func (s *AppState) SelectedTab() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedTab
}

func (s *AppState) NextTab() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedTab = (s.selectedTab + 1) % config.TabCount
	s.scrollOffset = 0
}

func (s *AppState) PrevTab() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedTab == 0 {
		s.selectedTab = config.TabCount - 1
	} else {
		s.selectedTab--
	}
	s.scrollOffset = 0
}

func (s *AppState) ScrollOffset() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scrollOffset
}

func (s *AppState) ScrollUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

func (s *AppState) ScrollDown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrollOffset++
}

func (s *AppState) ShowHelp() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showHelp
}

func (s *AppState) ToggleHelp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showHelp = !s.showHelp
}
