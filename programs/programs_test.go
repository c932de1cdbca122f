package programs

import (
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()

	info, ok := reg.Lookup(solana.MustPublicKeyFromBase58(RAYDIUM_V4))
	if !ok {
		t.Fatal("Raydium V4 missing from registry")
	}
	if info.Category != CategoryDex {
		t.Fatalf("Raydium V4 category = %s, want DEX", info.Category)
	}

	info, ok = reg.Lookup(solana.MustPublicKeyFromBase58(MARGINFI))
	if !ok || info.Category != CategoryLending {
		t.Fatalf("MarginFi lookup = %+v %v, want Lending", info, ok)
	}

	if _, ok := reg.Lookup(solana.SystemProgramID); ok {
		t.Fatal("system program must not be in the registry")
	}
}

func TestRegistryTipAccounts(t *testing.T) {
	reg := NewRegistry()

	if got := len(reg.TipAccounts()); got != 8 {
		t.Fatalf("tip account count = %d, want 8", got)
	}
	for _, s := range jitoTipAccounts {
		if !reg.IsTipAccount(solana.MustPublicKeyFromBase58(s)) {
			t.Fatalf("tip account %s not recognized", s)
		}
	}
	if reg.IsTipAccount(solana.SystemProgramID) {
		t.Fatal("system program must not be a tip account")
	}
}

func TestRegistryAllIsCopy(t *testing.T) {
	reg := NewRegistry()
	n := reg.Len()

	all := reg.All()
	if len(all) != n {
		t.Fatalf("All len = %d, want %d", len(all), n)
	}
	delete(all, solana.MustPublicKeyFromBase58(RAYDIUM_V4))
	if reg.Len() != n {
		t.Fatal("mutating All() result must not affect the registry")
	}
}

func TestCategoryString(t *testing.T) {
	cases := map[Category]string{
		CategoryDex:     "DEX",
		CategoryLending: "Lending",
		CategoryStaking: "Staking",
		CategoryMev:     "MEV",
		CategoryToken:   "Token",
		CategoryOther:   "Other",
	}
	for cat, want := range cases {
		if got := cat.String(); got != want {
			t.Fatalf("Category(%d).String() = %q, want %q", cat, got, want)
		}
	}
}
