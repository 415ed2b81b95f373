package core

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/WeShipHQ/panda-monopoly-sub001/internal/codec"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/repository"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/solana"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PassSummary reports one full sync pass.
type PassSummary struct {
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Fetched     int       `json:"fetched"`
	Games       int       `json:"games"`
	Players     int       `json:"players"`
	Properties  int       `json:"properties"`
	Configs     int       `json:"configs"`
	Unknown     int       `json:"unknown"`
	Failed      int       `json:"failed"`
	Clamps      int       `json:"clamps"`
	HighestSlot uint64    `json:"highest_slot"`
}

// clampI64 narrows an unsigned chain value to the store's signed range,
// recording a warning when the documented fallback replaces the raw value.
func clampI64(v uint64, field string, warnings *[]string) int64 {
	if v > math.MaxInt64 {
		*warnings = append(*warnings, fmt.Sprintf("%s %d exceeds storable range, clamping", field, v))
		return math.MaxInt64
	}
	return int64(v)
}

type tradeDoc struct {
	ID               uint64 `json:"id"`
	Proposer         string `json:"proposer"`
	Receiver         string `json:"receiver"`
	TradeType        uint8  `json:"trade_type"`
	ProposerMoney    uint64 `json:"proposer_money"`
	ReceiverMoney    uint64 `json:"receiver_money"`
	ProposerProperty *uint8 `json:"proposer_property,omitempty"`
	ReceiverProperty *uint8 `json:"receiver_property,omitempty"`
	Status           uint8  `json:"status"`
	CreatedAt        int64  `json:"created_at"`
	ExpiresAt        int64  `json:"expires_at"`
}

type boardSlotDoc struct {
	Position    uint8   `json:"position"`
	Owner       *string `json:"owner,omitempty"`
	Houses      uint8   `json:"houses"`
	HasHotel    bool    `json:"has_hotel"`
	IsMortgaged bool    `json:"is_mortgaged"`
	Name        string  `json:"name"`
	Price       uint64  `json:"price"`
	ColorGroup  string  `json:"color_group"`
}

func gameToRow(gs *codec.GameState) (repository.Game, []string) {
	var warnings []string

	players := make([]string, 0, len(gs.Players))
	for _, p := range gs.Players {
		players = append(players, p.String())
	}
	playersJSON, _ := json.Marshal(players)

	trades := make([]tradeDoc, 0, len(gs.Trades))
	for _, t := range gs.Trades {
		trades = append(trades, tradeDoc{
			ID:               t.ID,
			Proposer:         t.Proposer.String(),
			Receiver:         t.Receiver.String(),
			TradeType:        t.TradeType,
			ProposerMoney:    t.ProposerMoney,
			ReceiverMoney:    t.ReceiverMoney,
			ProposerProperty: t.ProposerProperty,
			ReceiverProperty: t.ReceiverProperty,
			Status:           t.Status,
			CreatedAt:        t.CreatedAt,
			ExpiresAt:        t.ExpiresAt,
		})
	}
	tradesJSON, _ := json.Marshal(trades)

	slots := make([]boardSlotDoc, 0, len(gs.Properties))
	for _, p := range gs.Properties {
		doc := boardSlotDoc{
			Position:    p.Position,
			Houses:      p.Houses,
			HasHotel:    p.HasHotel,
			IsMortgaged: p.IsMortgaged,
			Name:        p.Name,
			Price:       p.Price,
			ColorGroup:  string(p.ColorGroup),
		}
		if p.Owner != nil {
			owner := p.Owner.String()
			doc.Owner = &owner
		}
		slots = append(slots, doc)
	}
	slotsJSON, _ := json.Marshal(slots)

	row := repository.Game{
		Pubkey:             gs.Address.String(),
		GameID:             clampI64(gs.GameID, "game_id", &warnings),
		ConfigID:           gs.ConfigID.String(),
		Authority:          gs.Authority.String(),
		Bump:               int16(gs.Bump),
		MaxPlayers:         int16(gs.MaxPlayers),
		CurrentPlayers:     int16(gs.CurrentPlayers),
		CurrentTurn:        int16(gs.CurrentTurn),
		Players:            string(playersJSON),
		TotalPlayersJoined: int16(gs.TotalPlayersJoined),
		ActivePlayers:      int16(gs.ActivePlayers),
		Status:             string(gs.Status),
		BankBalance:        clampI64(gs.BankBalance, "bank_balance", &warnings),
		FreeParkingPool:    clampI64(gs.FreeParkingPool, "free_parking_pool", &warnings),
		HousesRemaining:    int16(gs.HousesRemaining),
		HotelsRemaining:    int16(gs.HotelsRemaining),
		EntryFee:           clampI64(gs.EntryFee, "entry_fee", &warnings),
		PrizePool:          clampI64(gs.PrizePool, "prize_pool", &warnings),
		Trades:             string(tradesJSON),
		Properties:         string(slotsJSON),
		ChainCreatedAt:     gs.CreatedAt,
		StartedAt:          gs.StartedAt,
		EndedAt:            gs.EndedAt,
		GameEndTime:        gs.GameEndTime,
		TurnTimeLimit:      gs.TurnTimeLimit,
	}
	if gs.Winner != nil {
		winner := gs.Winner.String()
		row.Winner = &winner
	}
	if gs.TokenMint != nil {
		mint := gs.TokenMint.String()
		row.TokenMint = &mint
	}
	if gs.EndReason != nil {
		reason := int16(*gs.EndReason)
		row.EndReason = &reason
	}

	return row, warnings
}

func playerToRow(ps *codec.PlayerState) (repository.Player, []string) {
	var warnings []string

	owned := make([]uint8, 0, len(ps.PropertiesOwned))
	owned = append(owned, ps.PropertiesOwned...)
	ownedJSON, _ := json.Marshal(owned)

	row := repository.Player{
		Pubkey:                  ps.Address.String(),
		Wallet:                  ps.Wallet.String(),
		Game:                    ps.Game.String(),
		CashBalance:             clampI64(ps.CashBalance, "cash_balance", &warnings),
		Position:                int16(ps.Position),
		InJail:                  ps.InJail,
		JailTurns:               int16(ps.JailTurns),
		DoublesCount:            int16(ps.DoublesCount),
		IsBankrupt:              ps.IsBankrupt,
		PropertiesOwned:         string(ownedJSON),
		GetOutOfJailCards:       int16(ps.GetOutOfJailCards),
		NetWorth:                clampI64(ps.NetWorth, "net_worth", &warnings),
		LastRentCollected:       ps.LastRentCollected,
		FestivalBoostTurns:      int16(ps.FestivalBoostTurns),
		HasRolledDice:           ps.HasRolledDice,
		DiceRollFirst:           int16(ps.LastDiceRoll[0]),
		DiceRollSecond:          int16(ps.LastDiceRoll[1]),
		NeedsPropertyAction:     ps.NeedsPropertyAction,
		NeedsChanceCard:         ps.NeedsChanceCard,
		NeedsCommunityChestCard: ps.NeedsCommunityChestCard,
		NeedsBankruptcyCheck:    ps.NeedsBankruptcyCheck,
		NeedsSpecialSpaceAction: ps.NeedsSpecialSpaceAction,
		CardDrawnAt:             ps.CardDrawnAt,
	}
	if ps.PendingPropertyPosition != nil {
		pos := int16(*ps.PendingPropertyPosition)
		row.PendingPropertyPosition = &pos
	}
	if ps.PendingSpecialSpacePosition != nil {
		pos := int16(*ps.PendingSpecialSpacePosition)
		row.PendingSpecialSpacePosition = &pos
	}

	return row, warnings
}

func propertyToRow(prop *codec.PropertyState) (repository.Property, []string) {
	var warnings []string

	row := repository.Property{
		Pubkey:             prop.Address.String(),
		Position:           int16(prop.Position),
		Game:               prop.Game.String(),
		Price:              clampI64(prop.Price, "price", &warnings),
		ColorGroup:         string(prop.ColorGroup),
		PropertyType:       string(prop.PropertyType),
		Houses:             int16(prop.Houses),
		HasHotel:           prop.HasHotel,
		IsMortgaged:        prop.IsMortgaged,
		RentBase:           clampI64(prop.Rent.Base, "rent_base", &warnings),
		RentWithColorGroup: clampI64(prop.Rent.WithColorGroup, "rent_with_color_group", &warnings),
		RentOneHouse:       clampI64(prop.Rent.WithHouses[0], "rent_one_house", &warnings),
		RentTwoHouses:      clampI64(prop.Rent.WithHouses[1], "rent_two_houses", &warnings),
		RentThreeHouses:    clampI64(prop.Rent.WithHouses[2], "rent_three_houses", &warnings),
		RentFourHouses:     clampI64(prop.Rent.WithHouses[3], "rent_four_houses", &warnings),
		RentHotel:          clampI64(prop.Rent.WithHotel, "rent_hotel", &warnings),
		HouseCost:          clampI64(prop.HouseCost, "house_cost", &warnings),
		MortgageValue:      clampI64(prop.MortgageValue, "mortgage_value", &warnings),
		LastRentPaid:       prop.LastRentPaid,
		IsInitialized:      prop.IsInitialized,
	}
	if prop.Owner != nil {
		owner := prop.Owner.String()
		row.Owner = &owner
	}

	return row, warnings
}

func configToRow(cfg *codec.PlatformConfig) (repository.PlatformConfig, []string) {
	var warnings []string

	return repository.PlatformConfig{
		Pubkey:            cfg.Address.String(),
		Authority:         cfg.Authority.String(),
		FeeBasisPoints:    int32(cfg.FeeBasisPoints),
		FeeVault:          cfg.FeeVault.String(),
		TotalGamesCreated: clampI64(cfg.TotalGamesCreated, "total_games_created", &warnings),
		NextGameID:        clampI64(cfg.NextGameID, "next_game_id", &warnings),
		Bump:              int16(cfg.Bump),
	}, warnings
}

func rawToRow(acc solana.RawAccount) repository.RawAccount {
	return repository.RawAccount{
		Pubkey:   acc.Address.String(),
		Lamports: int64(min(acc.Lamports, math.MaxInt64)),
		Slot:     int64(min(acc.Slot, math.MaxInt64)),
		Data:     acc.Data,
	}
}
