package stats

import (
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/zionmelson/shredstream-tui/types"
)

func TestWalletMonitorUnconfigured(t *testing.T) {
	m := NewWalletMonitor()

	if _, ok := m.Wallet(); ok {
		t.Fatal("fresh monitor must have no wallet")
	}
	keys := []solana.PublicKey{solana.SystemProgramID}
	if m.Matches(keys) {
		t.Fatal("unconfigured monitor must never match")
	}
}

func TestWalletMonitorMatchesAndCounts(t *testing.T) {
	m := NewWalletMonitor()
	wallet := solana.MustPublicKeyFromBase58("96gYZGLnJYVFmbjzopPSU6QiEV5fGqZNyN9nmNhvrZU5")
	m.SetWallet(wallet)

	if !m.Matches([]solana.PublicKey{solana.SystemProgramID, wallet}) {
		t.Fatal("expected match on monitored address")
	}
	if m.Matches([]solana.PublicKey{solana.SystemProgramID}) {
		t.Fatal("unexpected match")
	}

	m.AddTxn(types.WalletTxn{Slot: 1, Signature: "a", Success: true})
	m.AddTxn(types.WalletTxn{Slot: 2, Signature: "b", Success: false})

	if m.TxnCount() != 2 || m.SuccessCount() != 1 || m.FailCount() != 1 {
		t.Fatalf("counts = %d/%d/%d, want 2/1/1",
			m.TxnCount(), m.SuccessCount(), m.FailCount())
	}
	if got := len(m.Txns()); got != 2 {
		t.Fatalf("Txns len = %d, want 2", got)
	}
}
