package programs

import (
	MapSet "github.com/deckarep/golang-set/v2"
	"github.com/gagliardetto/solana-go"
)

// Category classifies a known on-chain program.
type Category int

const (
	CategoryDex Category = iota
	CategoryLending
	CategoryStaking
	CategoryMev
	CategoryToken
	CategoryOther
)

func (c Category) String() string {
	switch c {
	case CategoryDex:
		return "DEX"
	case CategoryLending:
		return "Lending"
	case CategoryStaking:
		return "Staking"
	case CategoryMev:
		return "MEV"
	case CategoryToken:
		return "Token"
	default:
		return "Other"
	}
}

// ProgramInfo is the display metadata for a known program id.
type ProgramInfo struct {
	Name     string
	Category Category
}

// Well-known program IDs for MEV-relevant protocols.
const (
	// DEX programs
	JUPITER_V6      = "JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4"
	JUPITER_LIMIT   = "jupoNjAxXgZ4rjzxzPMP4oxduvQsQtZzyknqvzYNrNu"
	RAYDIUM_V4      = "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8"
	RAYDIUM_CLMM    = "CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK"
	RAYDIUM_CP      = "CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C"
	ORCA_WHIRLPOOL  = "whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc"
	ORCA_TOKEN_SWAP = "9W959DqEETiGZocYWCQPaJ6sBmUzgfxXfqGeTEdp3aQP"
	METEORA_DLMM    = "LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo"
	METEORA_POOLS   = "Eo7WjKq67rjJQSZxS6z3YkapzY3eMj6Xy8X5EQVn5UaB"
	LIFINITY_V2     = "2wT8Yq49kHgDzXuPxZSaeLaH1qbmGXtEyPy64bL7aD3c"
	PHOENIX         = "PhoeNiXZ8ByJGLkxNfZRnkUfjvmuYqLR89jjFHGqdXY"
	OPENBOOK_V2     = "opnb2LAfJYbRMAHHvqjCwQxanZn7ReEHp1k81EohpZb"

	// Lending/liquidation programs
	MARGINFI       = "MFv2hWf31Z9kbCa1snEPYctwafyhdvnV7FZnsebVacA"
	KAMINO_LENDING = "KLend2g3cP87ber41DLZqb3z4DfMaBqax8Tv1Kqpvwj"
	SOLEND         = "So1endDq2YkqhipRh3WViPa8hdiSpxWy6z3Z6tMCpAo"
	DRIFT          = "dRiftyHA39MWEi3m9aunc5MzRF1JYuBsbn6VPcn33UH"

	// Staking/LST programs
	MARINADE   = "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
	JITO_STAKE = "Jito4APyf642JPZPx3hGc6WWJ8zPKtRbRs4P815Awbb"
	SANCTUM    = "5ocnV1qiCgaQR8Jb8xWnVbApfaygJ8tNoZfgPwsgx9kx"

	// MEV/bundle programs
	JITO_TIP    = "T1pyyaTNZsKv2WcRAB8oVnk93mLJw2XzjtVYqCsaHqt"
	JITO_BUNDLE = "BundLEbyuDmhRKZJd7t5a3FiVqbzmdMBJhYLQbSCfvP"

	// Token programs
	TOKEN_PROGRAM    = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	TOKEN_2022       = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"
	ASSOCIATED_TOKEN = "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"
)

// jitoTipAccounts are the fixed Jito tip-collection accounts. A transaction
// referencing any of them is a bundle-membership signal.
var jitoTipAccounts = [8]string{
	"96gYZGLnJYVFmbjzopPSU6QiEV5fGqZNyN9nmNhvrZU5",
	"HFqU5x63VTqvQss8hp11i4bVa5Zp9xzzLnX5BQ6qB3m9",
	"Cw8CFyM9FkoMi7K7Crf6HNQqf4uEMzpKw6QNghXLvLkY",
	"ADaUMid9yfUytqMBgopwjb2DTLSokTSzL1zt6iGPPaKc",
	"DfXygSm4jCyNCybVYYK6DwvWqjKee8pbDmJGcLWNDXjh",
	"ADuUkR4vqLUMWXxW9gh6D6L8pMSawimctcNZ5pGwDcEt",
	"DttWaMuVvTiduZRnguLF7jNxTgiMBZ1hyAumKUiL2KRL",
	"3AVi9Tg9Uo68tJfuvoKvqKNWKkC5wPdSSdeBnizKZ6jT",
}

// Registry maps known program ids to metadata and holds the tip-account set.
type Registry struct {
	known map[solana.PublicKey]ProgramInfo
	tips  MapSet.Set[solana.PublicKey]
}

// NewRegistry builds the static registry. The table is versionable data, not
// protocol; unknown ids classify as Other.
func NewRegistry() *Registry {
	known := make(map[solana.PublicKey]ProgramInfo)

	add := func(id, name string, cat Category) {
		known[solana.MustPublicKeyFromBase58(id)] = ProgramInfo{Name: name, Category: cat}
	}

	// DEXes
	add(JUPITER_V6, "Jupiter V6", CategoryDex)
	add(JUPITER_LIMIT, "Jupiter Limit", CategoryDex)
	add(RAYDIUM_V4, "Raydium V4", CategoryDex)
	add(RAYDIUM_CLMM, "Raydium CLMM", CategoryDex)
	add(RAYDIUM_CP, "Raydium CP", CategoryDex)
	add(ORCA_WHIRLPOOL, "Orca Whirlpool", CategoryDex)
	add(ORCA_TOKEN_SWAP, "Orca Swap", CategoryDex)
	add(METEORA_DLMM, "Meteora DLMM", CategoryDex)
	add(METEORA_POOLS, "Meteora Pools", CategoryDex)
	add(LIFINITY_V2, "Lifinity V2", CategoryDex)
	add(PHOENIX, "Phoenix", CategoryDex)
	add(OPENBOOK_V2, "OpenBook V2", CategoryDex)

	// Lending
	add(MARGINFI, "MarginFi", CategoryLending)
	add(KAMINO_LENDING, "Kamino", CategoryLending)
	add(SOLEND, "Solend", CategoryLending)
	add(DRIFT, "Drift", CategoryLending)

	// Staking
	add(MARINADE, "Marinade", CategoryStaking)
	add(JITO_STAKE, "Jito Stake", CategoryStaking)
	add(SANCTUM, "Sanctum", CategoryStaking)

	// MEV
	add(JITO_TIP, "Jito Tips", CategoryMev)
	add(JITO_BUNDLE, "Jito Bundle", CategoryMev)

	// Token
	add(TOKEN_PROGRAM, "Token Program", CategoryToken)
	add(TOKEN_2022, "Token-2022", CategoryToken)
	add(ASSOCIATED_TOKEN, "Associated Token", CategoryToken)

	tips := MapSet.NewSet[solana.PublicKey]()
	for _, s := range jitoTipAccounts {
		tips.Add(solana.MustPublicKeyFromBase58(s))
	}

	return &Registry{known: known, tips: tips}
}

// Lookup returns metadata for a known program id.
func (r *Registry) Lookup(key solana.PublicKey) (ProgramInfo, bool) {
	info, ok := r.known[key]
	return info, ok
}

// IsTipAccount reports whether key is one of the Jito tip-collection accounts.
func (r *Registry) IsTipAccount(key solana.PublicKey) bool {
	return r.tips.Contains(key)
}

// Len returns the number of known programs.
func (r *Registry) Len() int {
	return len(r.known)
}

// All returns a copy of the registry table for display.
func (r *Registry) All() map[solana.PublicKey]ProgramInfo {
	out := make(map[solana.PublicKey]ProgramInfo, len(r.known))
	for k, v := range r.known {
		out[k] = v
	}
	return out
}

// TipAccounts returns the tip-collection account set as a slice.
func (r *Registry) TipAccounts() []solana.PublicKey {
	return r.tips.ToSlice()
}
