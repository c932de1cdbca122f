package stream

import (
	"github.com/gagliardetto/solana-go"

	"github.com/zionmelson/shredstream-tui/programs"
)

// ProgramMatch is one known program referenced by a transaction.
type ProgramMatch struct {
	Key  solana.PublicKey
	Info programs.ProgramInfo
}

// Classification is the result of matching one transaction's account keys
// against the program registry and the tip-account set. Category flags are
// per transaction: two DEX matches still set IsDex once.
type Classification struct {
	Matches []ProgramMatch

	IsDex     bool
	IsLending bool
	IsStaking bool
	IsMev     bool

	TipTouched bool
	TipAccount string
}

// ProgramNames returns the display names of the matched programs.
func (c Classification) ProgramNames() []string {
	if len(c.Matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.Matches))
	for _, m := range c.Matches {
		names = append(names, m.Info.Name)
	}
	return names
}

// Classify is a pure function of the account-key list and the registry.
// Callers are expected to have skipped zero-signature transactions already;
// classification happens exactly once per transaction per ingestion pass.
func Classify(accountKeys []solana.PublicKey, reg *programs.Registry) Classification {
	var cls Classification

	for _, key := range accountKeys {
		if reg.IsTipAccount(key) {
			cls.TipTouched = true
			cls.TipAccount = key.String()
		}

		info, ok := reg.Lookup(key)
		if !ok {
			continue
		}
		cls.Matches = append(cls.Matches, ProgramMatch{Key: key, Info: info})

		switch info.Category {
		case programs.CategoryDex:
			cls.IsDex = true
		case programs.CategoryLending:
			cls.IsLending = true
		case programs.CategoryStaking:
			cls.IsStaking = true
		case programs.CategoryMev:
			cls.IsMev = true
		}
	}

	return cls
}
