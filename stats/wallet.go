package stats

import (
	"sync"
	"sync/atomic"

	"github.com/gagliardetto/solana-go"

	"github.com/zionmelson/shredstream-tui/config"
	"github.com/zionmelson/shredstream-tui/types"
)

// WalletMonitor filters the feed for one optional monitored address. The
// address is written once at setup and read on every transaction, so it sits
// behind a read/write lock while the counters stay atomic. With no address
// configured the monitor is a complete no-op.
type WalletMonitor struct {
	mu     sync.RWMutex
	wallet *solana.PublicKey

	txnCount     atomic.Uint64
	successCount atomic.Uint64
	failCount    atomic.Uint64

	txns *Ring[types.WalletTxn]
}

func NewWalletMonitor() *WalletMonitor {
	return &WalletMonitor{
		txns: NewRing[types.WalletTxn](config.MaxWalletTxns),
	}
}

func (m *WalletMonitor) SetWallet(pk solana.PublicKey) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallet = &pk
}

// Wallet returns the monitored address and whether one is configured.
func (m *WalletMonitor) Wallet() (solana.PublicKey, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.wallet == nil {
		return solana.PublicKey{}, false
	}
	return *m.wallet, true
}

// Matches reports whether any account key is the monitored address.
func (m *WalletMonitor) Matches(keys []solana.PublicKey) bool {
	wallet, ok := m.Wallet()
	if !ok {
		return false
	}
	for _, k := range keys {
		if k.Equals(wallet) {
			return true
		}
	}
	return false
}

func (m *WalletMonitor) AddTxn(txn types.WalletTxn) {
	m.txnCount.Add(1)
	if txn.Success {
		m.successCount.Add(1)
	} else {
		m.failCount.Add(1)
	}
	m.txns.Push(txn)
}

func (m *WalletMonitor) TxnCount() uint64     { return m.txnCount.Load() }
func (m *WalletMonitor) SuccessCount() uint64 { return m.successCount.Load() }
func (m *WalletMonitor) FailCount() uint64    { return m.failCount.Load() }

func (m *WalletMonitor) Txns() []types.WalletTxn {
	return m.txns.Items()
}
