package solana

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

// RawAccount is an immutable snapshot of one on-chain account, captured by
// the fetch layer and persisted verbatim before any decoding happens.
type RawAccount struct {
	Address    solana.PublicKey
	Data       []byte
	Lamports   uint64
	Slot       uint64
	CapturedAt time.Time
}

func (a RawAccount) Size() int {
	return len(a.Data)
}

type fetchResult struct {
	Account *RawAccount
	Error   error
}
