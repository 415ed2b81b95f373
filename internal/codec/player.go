package codec

import (
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/board"
	"github.com/gagliardetto/solana-go"
)

const (
	maxJailTurns    = 3
	maxDoublesCount = 3
	maxPosition     = board.Size - 1
)

// PlayerState is the decoded per-player account.
type PlayerState struct {
	Address            solana.PublicKey
	Wallet             solana.PublicKey
	Game               solana.PublicKey
	CashBalance        uint64
	Position           uint8
	InJail             bool
	JailTurns          uint8
	DoublesCount       uint8
	IsBankrupt         bool
	PropertiesOwned    []uint8
	GetOutOfJailCards  uint8
	NetWorth           uint64
	LastRentCollected  int64
	FestivalBoostTurns uint8
	HasRolledDice      bool
	LastDiceRoll       [2]uint8

	NeedsPropertyAction         bool
	PendingPropertyPosition     *uint8
	NeedsChanceCard             bool
	NeedsCommunityChestCard     bool
	NeedsBankruptcyCheck        bool
	NeedsSpecialSpaceAction     bool
	PendingSpecialSpacePosition *uint8
	CardDrawnAt                 *int64
}

// DecodePlayerState decodes a raw player account buffer in strict layout
// order, clamping out-of-range values instead of failing the account.
func DecodePlayerState(address solana.PublicKey, data []byte) (*PlayerState, []string, error) {
	r := NewReader(data[min(DiscriminatorLength, len(data)):])
	ps := &PlayerState{Address: address}
	var err error

	if ps.Wallet, err = r.Pubkey(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.Game, err = r.Pubkey(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.CashBalance, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.Position, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.Position > maxPosition {
		r.Warnf("position %d beyond board, clamping to %d", ps.Position, maxPosition)
		ps.Position = maxPosition
	}
	if ps.InJail, err = r.Bool(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.JailTurns, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.JailTurns > maxJailTurns {
		r.Warnf("jail turns %d above %d, clamping", ps.JailTurns, maxJailTurns)
		ps.JailTurns = maxJailTurns
	}
	if ps.DoublesCount, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.DoublesCount > maxDoublesCount {
		r.Warnf("doubles count %d above %d, clamping", ps.DoublesCount, maxDoublesCount)
		ps.DoublesCount = maxDoublesCount
	}
	if ps.IsBankrupt, err = r.Bool(); err != nil {
		return nil, r.Warnings(), err
	}

	// Owned properties: the encoded length is clamped both to the board size
	// and to the bytes actually left in the buffer. A hostile length is
	// truncated with a warning rather than overrunning the read.
	ownedCount, err := r.VecLen()
	if err != nil {
		return nil, r.Warnings(), err
	}
	if ownedCount > board.Size {
		r.Warnf("owned properties vector encodes %d entries, clamping to %d", ownedCount, board.Size)
		ownedCount = board.Size
	}
	if ownedCount > r.Remaining() {
		r.Warnf("owned properties vector encodes %d entries but only %d bytes remain, truncating", ownedCount, r.Remaining())
		ownedCount = r.Remaining()
	}
	for i := 0; i < ownedCount; i++ {
		pos, err := r.U8()
		if err != nil {
			return nil, r.Warnings(), err
		}
		if pos >= 1 && pos <= maxPosition {
			ps.PropertiesOwned = append(ps.PropertiesOwned, pos)
		}
	}

	if ps.GetOutOfJailCards, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.NetWorth, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.LastRentCollected, err = r.I64(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.FestivalBoostTurns, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.HasRolledDice, err = r.Bool(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.LastDiceRoll[0], err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.LastDiceRoll[1], err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}

	// Pending-action flags: the two position-bearing flags carry their
	// payload byte only when set.
	if ps.NeedsPropertyAction, err = r.Bool(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.NeedsPropertyAction {
		pos, err := r.U8()
		if err != nil {
			return nil, r.Warnings(), err
		}
		ps.PendingPropertyPosition = &pos
	}
	if ps.NeedsChanceCard, err = r.Bool(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.NeedsCommunityChestCard, err = r.Bool(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.NeedsBankruptcyCheck, err = r.Bool(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.NeedsSpecialSpaceAction, err = r.Bool(); err != nil {
		return nil, r.Warnings(), err
	}
	if ps.NeedsSpecialSpaceAction {
		pos, err := r.U8()
		if err != nil {
			return nil, r.Warnings(), err
		}
		ps.PendingSpecialSpacePosition = &pos
	}
	if ps.CardDrawnAt, err = r.OptionI64(); err != nil {
		return nil, r.Warnings(), err
	}

	return ps, r.Warnings(), nil
}
