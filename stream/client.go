package stream

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zionmelson/shredstream-tui/config"
	"github.com/zionmelson/shredstream-tui/logger"
	"github.com/zionmelson/shredstream-tui/programs"
	"github.com/zionmelson/shredstream-tui/state"
	"github.com/zionmelson/shredstream-tui/types"
)

// Client is the stream ingestor: it owns the reconnect loop against the
// shredstream proxy, decodes each message, classifies every transaction and
// drives all tracker updates on the shared AppState.
type Client struct {
	proxyURL string
	state    *state.AppState
	registry *programs.Registry

	msgs chan Message

	// Highest slot processed so far, used for leader skip accounting.
	// Only the ingestion goroutine touches it.
	lastSlot uint64

	connectTimeout    time.Duration
	idleTimeout       time.Duration
	reconnectInterval time.Duration
}

func NewClient(proxyURL string, st *state.AppState) *Client {
	return &Client{
		proxyURL:          proxyURL,
		state:             st,
		registry:          programs.NewRegistry(),
		msgs:              make(chan Message, config.ClientMessageBuffer),
		connectTimeout:    config.DefaultConnectTimeout,
		idleTimeout:       config.DefaultIdleTimeout,
		reconnectInterval: config.ReconnectInterval,
	}
}

// Messages is the bounded notification channel consumed by the presentation
// layer. Delivery is best-effort.
func (c *Client) Messages() <-chan Message {
	return c.msgs
}

// send is deliberately non-blocking: ingestion throughput must never be
// limited by presentation-layer consumption speed.
func (c *Client) send(msg Message) {
	select {
	case c.msgs <- msg:
	default:
	}
}

func (c *Client) slog() *slog.Logger {
	if logger.StreamLogger != nil {
		return logger.StreamLogger
	}
	return logger.GlobalLogger
}

// Run drives the non-terminating reconnect loop. Every exit from a stream
// attempt, clean or not, goes through the same fixed-delay retry path; the
// only way out is ctx cancellation at process shutdown.
func (c *Client) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			c.state.SetConnectionState(types.Disconnected())
			return
		}

		c.state.SetConnectionState(types.Connecting())

		err := c.runOnce(ctx)
		if ctx.Err() != nil {
			c.state.SetConnectionState(types.Disconnected())
			return
		}
		if err != nil {
			c.slog().Error("Stream attempt failed", "err", err)
			c.state.LogError("Connection error: %v", err)
			c.send(Message{Kind: KindError, Err: err.Error()})
		} else {
			c.state.LogInfo("Stream ended, reconnecting...")
		}

		c.state.SetConnectionState(types.Reconnecting())
		c.state.AddReconnect()
		c.send(Message{Kind: KindConnection, State: types.Reconnecting()})

		select {
		case <-ctx.Done():
			c.state.SetConnectionState(types.Disconnected())
			return
		case <-time.After(c.reconnectInterval):
		}
	}
}

// runOnce performs a single connect-and-consume attempt. It returns nil when
// the proxy closes the stream cleanly and an error otherwise; both paths
// reconnect.
func (c *Client) runOnce(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: c.connectTimeout}
	conn, _, err := dialer.DialContext(ctx, c.proxyURL, nil)
	if err != nil {
		return fmt.Errorf("dial proxy: %w", err)
	}
	defer conn.Close()

	c.slog().Info("Connected to proxy", "url", c.proxyURL)
	c.state.LogInfo("Connected to proxy at %s", c.proxyURL)
	c.state.SetConnectionState(types.Connected())
	c.send(Message{Kind: KindConnection, State: types.Connected()})

	conn.SetPongHandler(func(string) error {
		c.state.Health.RecordHeartbeat(true)
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go c.heartbeat(ctx, conn, done)

	// Duplicate tracking is session-scoped: a fresh stream starts clean.
	dedup := NewDuplicateDetector()

	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := conn.SetReadDeadline(time.Now().Add(c.idleTimeout)); err != nil {
			return fmt.Errorf("set read deadline: %w", err)
		}
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("stream read: %w", err)
		}
		c.handleMessage(data, dedup)
	}
}

// heartbeat pings the proxy on a fixed interval and closes the connection
// when the context is cancelled so the blocked read returns.
func (c *Client) heartbeat(ctx context.Context, conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			_ = conn.Close()
			return
		case <-ticker.C:
			deadline := time.Now().Add(config.DefaultWriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				c.state.Health.RecordHeartbeat(false)
			}
		}
	}
}

// handleMessage decodes one stream message. Decode failures are non-fatal:
// the slot's contribution is skipped and the stream continues.
func (c *Client) handleMessage(data []byte, dedup *DuplicateDetector) {
	env, err := DecodeEnvelope(data)
	if err != nil {
		c.slog().Warn("Failed to decode stream message, skipping", "err", err)
		return
	}

	entries, err := DecodeEntries(env.Entries)
	if err != nil {
		c.slog().Warn("Failed to deserialize entries", "slot", env.Slot, "err", err)
		c.state.LogWarn("Failed to deserialize entries for slot %d: %v", env.Slot, err)
		return
	}

	c.processBatch(env, entries, dedup)
}

// processBatch runs classification and every tracker update for one decoded
// slot batch, then emits the best-effort notification. Each transaction is
// inspected exactly once.
func (c *Client) processBatch(env *Envelope, entries []Entry, dedup *DuplicateDetector) {
	receivedAt := time.Now()

	entryCount := len(entries)
	txnCount := 0
	for i := range entries {
		txnCount += len(entries[i].Transactions)
	}

	var (
		dexCount   uint64
		bundleTxns []string
		tipAccount string
		tipAmount  uint64
	)

	for i := range entries {
		for j := range entries[i].Transactions {
			txn := &entries[i].Transactions[j]

			// Shreds occasionally carry signature-less partial transactions;
			// they are unclassifiable, not errors.
			if len(txn.Signatures) == 0 {
				continue
			}
			sig := txn.Signatures[0].String()

			if dedup.Observe(sig) {
				c.state.Competition.AddDuplicate()
			}

			cls := Classify(txn.Message.AccountKeys, c.registry)

			for _, m := range cls.Matches {
				c.state.Programs.Record(m.Key, m.Info)
			}
			if cls.IsDex {
				c.state.Programs.CountCategory(programs.CategoryDex)
				dexCount++
			}
			if cls.IsLending {
				c.state.Programs.CountCategory(programs.CategoryLending)
			}
			if cls.IsStaking {
				c.state.Programs.CountCategory(programs.CategoryStaking)
			}
			if cls.IsMev {
				c.state.Programs.CountCategory(programs.CategoryMev)
			}

			if cls.TipTouched {
				bundleTxns = append(bundleTxns, sig)
				tipAccount = cls.TipAccount
			}

			// Bias the bounded sample window toward interesting activity but
			// keep a baseline trickle while idle.
			if cls.IsDex || cls.TipTouched || c.state.TxnSamples.Len() < config.BaselineSampleTarget {
				c.state.AddTxnSample(types.TxnSample{
					Slot:       env.Slot,
					Signature:  sig,
					ReceivedAt: receivedAt,
					Programs:   cls.ProgramNames(),
					IsBundle:   cls.TipTouched,
				})
			}

			if c.state.Wallet.Matches(txn.Message.AccountKeys) {
				c.state.Wallet.AddTxn(types.WalletTxn{
					Slot:      env.Slot,
					Signature: sig,
					Timestamp: receivedAt,
					// Shred data carries no execution outcome.
					Success:  true,
					Programs: cls.ProgramNames(),
				})
			}
		}
	}

	if len(bundleTxns) > 0 {
		c.state.Competition.AddBundle(types.BundleInfo{
			Slot:        env.Slot,
			TxnCount:    uint32(len(bundleTxns)),
			TipLamports: tipAmount,
			TipAccount:  tipAccount,
			Signatures:  bundleTxns,
			Timestamp:   receivedAt,
		})
	}

	var firstShredDelay time.Duration
	if env.SentUs > 0 {
		sent := time.UnixMicro(int64(env.SentUs))
		if d := receivedAt.Sub(sent); d > 0 {
			firstShredDelay = d

			turbineIdx := -1
			if env.TurbineIndex != nil {
				turbineIdx = int(*env.TurbineIndex)
			}
			sample := types.LatencySample{
				Slot:         env.Slot,
				LatencyUs:    uint64(d.Microseconds()),
				Leader:       env.Leader,
				Region:       env.Region,
				TurbineIndex: turbineIdx,
			}
			c.state.Latency.Observe(sample)
			if env.Leader != "" {
				c.state.Leaders.ObserveLatency(env.Leader, sample.LatencyUs)
			}
		}
	}

	if env.TurbineIndex != nil && env.Layer != nil {
		c.state.Turbine.Observe(types.TurbineInfo{
			Slot:       env.Slot,
			ShredIndex: env.ShredIndex,
			TreeIndex:  *env.TurbineIndex,
			Layer:      *env.Layer,
			ReceivedAt: receivedAt,
			Source:     env.Region,
		})
	}

	c.state.Health.RecordReceive(env.Recovered)

	if env.Leader != "" {
		// Slots between the last processed slot and this one never arrived;
		// credit them to the announced leader as skipped unless the gap is
		// large enough to mean a reconnect rather than skips.
		if c.lastSlot > 0 && env.Slot > c.lastSlot+1 && env.Slot-c.lastSlot <= config.MaxLeaderSkipGap {
			for s := c.lastSlot + 1; s < env.Slot; s++ {
				c.state.Leaders.RecordSkipped(env.Leader, s)
			}
		}
		c.state.Leaders.RecordSlot(env.Leader, env.Slot, uint64(txnCount))
	}
	if env.Slot > c.lastSlot {
		c.lastSlot = env.Slot
	}

	// One SlotInfo per batch, zero-activity batches included. The append
	// happens before the notification send below.
	c.state.AddSlot(types.SlotInfo{
		Slot:            env.Slot,
		EntryCount:      uint64(entryCount),
		TxnCount:        uint64(txnCount),
		ReceivedAt:      receivedAt,
		FirstShredDelay: firstShredDelay,
		Leader:          env.Leader,
		DexTxnCount:     dexCount,
		BundleTxnCount:  uint64(len(bundleTxns)),
	})

	c.send(Message{
		Kind:       KindEntries,
		Slot:       env.Slot,
		EntryCount: entryCount,
		TxnCount:   txnCount,
	})
}
