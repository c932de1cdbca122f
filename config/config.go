package config

import "time"

// Path config
const (
	LogPath    = "./logs/"
	ConfigPath = "./"
)

// Network config
const (
	// Connection setup and stream timeouts for the proxy websocket.
	DefaultConnectTimeout = 10 * time.Second
	DefaultIdleTimeout    = 60 * time.Second
	DefaultWriteTimeout   = 10 * time.Second

	// Fixed reconnect delay between attempts. Deliberately not exponential:
	// the proxy is expected to come back quickly and a stale dashboard is
	// worse than a few extra dials.
	ReconnectInterval = 2 * time.Second

	HeartbeatInterval = 30 * time.Second
)

// Client config
const (
	// Buffered capacity of the client -> UI notification channel.
	// Sends are non-blocking; a full channel drops the notification.
	ClientMessageBuffer = 1000
)

// History config
// Bounded ring capacities. Rings evict the oldest entry before appending,
// so memory stays flat regardless of feed rate.
const (
	MaxLogEntries       = 100
	MaxSlotHistory      = 50
	MaxTxnSamples       = 20
	MaxTurbineHistory   = 100
	MaxRecentBundles    = 50
	MaxRecentSandwiches = 50
	MaxWalletTxns       = 100
	MaxLeaderHistory    = 100
)

// Classification config
const (
	// Keep sampling uninteresting transactions until the ring holds this many.
	BaselineSampleTarget = 10

	// Duplicate detector: every DedupCheckInterval observations, clear the
	// signature set if it has grown past DedupMaxEntries. Duplicates across
	// a clear boundary are undercounted; that is the documented trade-off.
	DedupCheckInterval = 1000
	DedupMaxEntries    = 50000

	// Cap on how many gap slots a single advance may mark as skipped for the
	// announced leader. Larger gaps mean a reconnect, not skipped slots.
	MaxLeaderSkipGap = 32
)

// UI config
const (
	TabCount        = 6
	DefaultTickRate = 100 * time.Millisecond

	// How often the metrics window resets when no explicit reset arrives.
	DefaultMetricsWindow = 10 * time.Second
)
