package stream

import (
	"encoding/json"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Envelope is one proxy stream message. Entries holds the opaque
// bincode-serialized entry batch; everything past Slot and Entries is
// optional metadata the proxy may or may not attach.
type Envelope struct {
	Slot    uint64 `json:"slot"`
	Entries []byte `json:"entries"`

	Leader string `json:"leader,omitempty"`
	Region string `json:"region,omitempty"`

	// SentUs is the proxy send time in microseconds since the Unix epoch;
	// 0 means the proxy did not stamp it.
	SentUs uint64 `json:"sent_us,omitempty"`

	TurbineIndex *uint32 `json:"turbine_index,omitempty"`
	Layer        *int    `json:"layer,omitempty"`
	ShredIndex   uint32  `json:"shred_index,omitempty"`
	Recovered    bool    `json:"recovered,omitempty"`
}

// Entry is one ledger entry: a PoH tick plus its transactions.
type Entry struct {
	NumHashes    uint64
	Hash         [32]byte
	Transactions []solana.Transaction
}

// DecodeEnvelope parses one websocket message.
func DecodeEnvelope(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return &env, nil
}

// DecodeEntries deserializes a bincode vector of entries. Each entry is
// num_hashes (u64 LE), the PoH hash (32 bytes), then a u64-prefixed vector
// of transactions in the standard Solana wire format.
func DecodeEntries(data []byte) ([]Entry, error) {
	dec := bin.NewBinDecoder(data)

	entryCount, err := dec.ReadUint64(bin.LE)
	if err != nil {
		return nil, fmt.Errorf("read entry count: %w", err)
	}
	if entryCount > uint64(len(data)) {
		return nil, fmt.Errorf("implausible entry count %d for %d payload bytes", entryCount, len(data))
	}

	entries := make([]Entry, 0, entryCount)
	for i := uint64(0); i < entryCount; i++ {
		var e Entry

		if e.NumHashes, err = dec.ReadUint64(bin.LE); err != nil {
			return nil, fmt.Errorf("entry %d: read num_hashes: %w", i, err)
		}
		hash, err := dec.ReadNBytes(32)
		if err != nil {
			return nil, fmt.Errorf("entry %d: read hash: %w", i, err)
		}
		copy(e.Hash[:], hash)

		txnCount, err := dec.ReadUint64(bin.LE)
		if err != nil {
			return nil, fmt.Errorf("entry %d: read txn count: %w", i, err)
		}
		if txnCount > uint64(len(data)) {
			return nil, fmt.Errorf("entry %d: implausible txn count %d", i, txnCount)
		}

		e.Transactions = make([]solana.Transaction, 0, txnCount)
		for j := uint64(0); j < txnCount; j++ {
			txn, err := solana.TransactionFromDecoder(dec)
			if err != nil {
				return nil, fmt.Errorf("entry %d txn %d: %w", i, j, err)
			}
			e.Transactions = append(e.Transactions, *txn)
		}

		entries = append(entries, e)
	}

	return entries, nil
}
