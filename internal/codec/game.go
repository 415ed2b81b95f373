package codec

import (
	"errors"
	"fmt"

	"github.com/WeShipHQ/panda-monopoly-sub001/internal/board"
	"github.com/gagliardetto/solana-go"
)

// ErrTooSmall rejects a buffer outright before field-by-field decode when it
// cannot possibly hold the fixed portion of the layout.
var ErrTooSmall = errors.New("buffer too small")

const (
	// MaxGamePlayers is the hard cap on the players vector. Encoded entries
	// beyond it are consumed to keep the cursor aligned but discarded.
	MaxGamePlayers = 16

	// MinGamePlayers is the lower clamp bound for max_players.
	MinGamePlayers = 2
)

// gameStateMinLen is the smallest encoding of a GameState: discriminator,
// scalar header, empty vectors, absent options, and the fixed 40-entry
// property array. Anything shorter cannot be a GameState and is rejected
// before decoding to avoid cascading misreads.
const gameStateMinLen = DiscriminatorLength +
	8 + 32 + 32 + 4 + // game id, config, authority, bump + capacity bytes
	4 + 4 + 2 + 1 + // empty players vec, empty eliminated vec, totals, status
	8 + 8 + 1 + 1 + // bank balance, free parking, houses, hotels
	1 + 8 + 8 + 1 + 1 + // absent winner, entry fee, prize pool, absent mint, absent end reason
	4 + // empty trades vec
	board.Size*4 // property array with absent owners

type GameStatus string

const (
	StatusWaitingForPlayers GameStatus = "WaitingForPlayers"
	StatusInProgress        GameStatus = "InProgress"
	StatusFinished          GameStatus = "Finished"
)

// TradeInfo is a trade embedded in a game account.
type TradeInfo struct {
	ID               uint64
	Proposer         solana.PublicKey
	Receiver         solana.PublicKey
	TradeType        uint8
	ProposerMoney    uint64
	ReceiverMoney    uint64
	ProposerProperty *uint8
	ReceiverProperty *uint8
	Status           uint8
	CreatedAt        int64
	ExpiresAt        int64
}

// PropertySummary is one slot of the fixed board array inside a game
// account. The chain only stores the mutable subset; price, color group and
// rent schedule come from the board table.
type PropertySummary struct {
	Position    uint8
	Owner       *solana.PublicKey
	Houses      uint8
	HasHotel    bool
	IsMortgaged bool

	Name       string
	Price      uint64
	ColorGroup board.ColorGroup
	Rent       board.RentSchedule
}

// GameState is the decoded composite game record.
type GameState struct {
	Address            solana.PublicKey
	GameID             uint64
	ConfigID           solana.PublicKey
	Authority          solana.PublicKey
	Bump               uint8
	MaxPlayers         uint8
	CurrentPlayers     uint8
	CurrentTurn        uint8
	Players            []solana.PublicKey
	TotalPlayersJoined uint8
	ActivePlayers      uint8
	Status             GameStatus
	BankBalance        uint64
	FreeParkingPool    uint64
	HousesRemaining    uint8
	HotelsRemaining    uint8
	Winner             *solana.PublicKey
	EntryFee           uint64
	PrizePool          uint64
	TokenMint          *solana.PublicKey
	EndReason          *uint8
	Trades             []TradeInfo
	Properties         [board.Size]PropertySummary
	CreatedAt          int64
	StartedAt          *int64
	EndedAt            *int64
	GameEndTime        *int64
	TurnTimeLimit      *int64
}

// DecodeGameState decodes a raw game account buffer in strict layout order.
// It returns the decoded record together with the soft warnings collected
// along the way (clamps, malformed option flags). A truncated buffer fails
// with InsufficientDataError; callers report it and skip the account.
func DecodeGameState(address solana.PublicKey, data []byte) (*GameState, []string, error) {
	if len(data) < gameStateMinLen {
		return nil, nil, fmt.Errorf("%w: game state needs at least %d bytes, got %d", ErrTooSmall, gameStateMinLen, len(data))
	}

	r := NewReader(data[DiscriminatorLength:])
	gs := &GameState{Address: address}
	var err error

	if gs.GameID, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.ConfigID, err = r.Pubkey(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.Authority, err = r.Pubkey(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.Bump, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.MaxPlayers, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.CurrentPlayers, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.CurrentTurn, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}

	// Players vector: all encoded entries are consumed so the cursor stays
	// aligned, only the first MaxGamePlayers are kept.
	playerCount, err := r.VecLen()
	if err != nil {
		return nil, r.Warnings(), err
	}
	if playerCount > MaxGamePlayers {
		r.Warnf("players vector encodes %d entries, keeping %d", playerCount, MaxGamePlayers)
	}
	for i := 0; i < playerCount; i++ {
		pk, err := r.Pubkey()
		if err != nil {
			return nil, r.Warnings(), err
		}
		if i < MaxGamePlayers {
			gs.Players = append(gs.Players, pk)
		}
	}

	// Eliminated flags: consumed for alignment only.
	eliminatedCount, err := r.VecLen()
	if err != nil {
		return nil, r.Warnings(), err
	}
	for i := 0; i < eliminatedCount; i++ {
		if _, err := r.U8(); err != nil {
			return nil, r.Warnings(), err
		}
	}

	if gs.TotalPlayersJoined, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.ActivePlayers, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}

	statusByte, err := r.U8()
	if err != nil {
		return nil, r.Warnings(), err
	}
	switch statusByte {
	case 0:
		gs.Status = StatusWaitingForPlayers
	case 1:
		gs.Status = StatusInProgress
	case 2:
		gs.Status = StatusFinished
	default:
		r.Warnf("unknown game status %d, defaulting to %s", statusByte, StatusWaitingForPlayers)
		gs.Status = StatusWaitingForPlayers
	}

	if gs.BankBalance, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.FreeParkingPool, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.HousesRemaining, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.HotelsRemaining, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.Winner, err = r.OptionPubkey(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.EntryFee, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.PrizePool, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.TokenMint, err = r.OptionPubkey(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.EndReason, err = r.OptionU8(); err != nil {
		return nil, r.Warnings(), err
	}

	if gs.Trades, err = decodeTrades(r); err != nil {
		return nil, r.Warnings(), err
	}

	for i := 0; i < board.Size; i++ {
		entry := PropertySummary{Position: uint8(i)}
		if entry.Owner, err = r.OptionPubkey(); err != nil {
			return nil, r.Warnings(), err
		}
		if entry.Houses, err = r.U8(); err != nil {
			return nil, r.Warnings(), err
		}
		if entry.HasHotel, err = r.Bool(); err != nil {
			return nil, r.Warnings(), err
		}
		if entry.IsMortgaged, err = r.Bool(); err != nil {
			return nil, r.Warnings(), err
		}
		gs.Properties[i] = entry
	}

	if gs.CreatedAt, err = r.I64(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.StartedAt, err = r.OptionI64(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.EndedAt, err = r.OptionI64(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.GameEndTime, err = r.OptionI64(); err != nil {
		return nil, r.Warnings(), err
	}
	if gs.TurnTimeLimit, err = r.OptionI64(); err != nil {
		return nil, r.Warnings(), err
	}

	gs.normalize(r)
	return gs, r.Warnings(), nil
}

func decodeTrades(r *Reader) ([]TradeInfo, error) {
	count, err := r.VecLen()
	if err != nil {
		return nil, err
	}
	var trades []TradeInfo
	for i := 0; i < count; i++ {
		var t TradeInfo
		if t.ID, err = r.U64(); err != nil {
			return nil, err
		}
		if t.Proposer, err = r.Pubkey(); err != nil {
			return nil, err
		}
		if t.Receiver, err = r.Pubkey(); err != nil {
			return nil, err
		}
		if t.TradeType, err = r.U8(); err != nil {
			return nil, err
		}
		if t.ProposerMoney, err = r.U64(); err != nil {
			return nil, err
		}
		if t.ReceiverMoney, err = r.U64(); err != nil {
			return nil, err
		}
		if t.ProposerProperty, err = r.OptionU8(); err != nil {
			return nil, err
		}
		if t.ReceiverProperty, err = r.OptionU8(); err != nil {
			return nil, err
		}
		if t.Status, err = r.U8(); err != nil {
			return nil, err
		}
		if t.CreatedAt, err = r.I64(); err != nil {
			return nil, err
		}
		if t.ExpiresAt, err = r.I64(); err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, nil
}

// normalize applies the post-decode clamps and the static board backfill.
func (gs *GameState) normalize(r *Reader) {
	if gs.MaxPlayers < MinGamePlayers {
		r.Warnf("max_players %d below %d, clamping", gs.MaxPlayers, MinGamePlayers)
		gs.MaxPlayers = MinGamePlayers
	}
	if gs.MaxPlayers > MaxGamePlayers {
		r.Warnf("max_players %d above %d, clamping", gs.MaxPlayers, MaxGamePlayers)
		gs.MaxPlayers = MaxGamePlayers
	}

	if gs.CurrentPlayers > gs.MaxPlayers {
		r.Warnf("current_players %d above max_players %d, clamping", gs.CurrentPlayers, gs.MaxPlayers)
		gs.CurrentPlayers = gs.MaxPlayers
	}
	if int(gs.CurrentPlayers) > len(gs.Players) {
		r.Warnf("current_players %d above player list length %d, clamping", gs.CurrentPlayers, len(gs.Players))
		gs.CurrentPlayers = uint8(len(gs.Players))
	}

	maxTurn := uint8(0)
	if gs.CurrentPlayers > 0 {
		maxTurn = gs.CurrentPlayers - 1
	}
	if gs.CurrentTurn > maxTurn {
		r.Warnf("current_turn %d above %d, clamping", gs.CurrentTurn, maxTurn)
		gs.CurrentTurn = maxTurn
	}

	for i := range gs.Properties {
		info, ok := board.Lookup(gs.Properties[i].Position)
		if !ok {
			continue
		}
		gs.Properties[i].Name = info.Name
		gs.Properties[i].Price = info.Price
		gs.Properties[i].ColorGroup = info.Color
		gs.Properties[i].Rent = info.Rent
	}
}
