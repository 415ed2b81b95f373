package codec

import (
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/board"
	"github.com/gagliardetto/solana-go"
)

const maxHouses = 4

// PropertyState is the decoded per-property account. Zero-valued static
// fields are backfilled from the board table.
type PropertyState struct {
	Address       solana.PublicKey
	Position      uint8
	Game          solana.PublicKey
	Owner         *solana.PublicKey
	Price         uint64
	ColorGroup    board.ColorGroup
	PropertyType  board.SpaceType
	Houses        uint8
	HasHotel      bool
	IsMortgaged   bool
	Rent          board.RentSchedule
	HouseCost     uint64
	MortgageValue uint64
	LastRentPaid  int64
	IsInitialized bool
}

// DecodePropertyState decodes a raw property account buffer.
func DecodePropertyState(address solana.PublicKey, data []byte) (*PropertyState, []string, error) {
	r := NewReader(data[min(DiscriminatorLength, len(data)):])
	prop := &PropertyState{Address: address}
	var err error

	if prop.Position, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if prop.Position > maxPosition {
		r.Warnf("property position %d beyond board, clamping to %d", prop.Position, maxPosition)
		prop.Position = maxPosition
	}
	if prop.Game, err = r.Pubkey(); err != nil {
		return nil, r.Warnings(), err
	}
	if prop.Owner, err = r.OptionPubkey(); err != nil {
		return nil, r.Warnings(), err
	}
	if prop.Price, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	colorByte, err := r.U8()
	if err != nil {
		return nil, r.Warnings(), err
	}
	typeByte, err := r.U8()
	if err != nil {
		return nil, r.Warnings(), err
	}
	if prop.Houses, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}
	if prop.Houses > maxHouses {
		r.Warnf("houses %d above %d, clamping", prop.Houses, maxHouses)
		prop.Houses = maxHouses
	}
	if prop.HasHotel, err = r.Bool(); err != nil {
		return nil, r.Warnings(), err
	}
	if prop.IsMortgaged, err = r.Bool(); err != nil {
		return nil, r.Warnings(), err
	}
	if prop.Rent.Base, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	if prop.Rent.WithColorGroup, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	for i := 0; i < len(prop.Rent.WithHouses); i++ {
		if prop.Rent.WithHouses[i], err = r.U64(); err != nil {
			return nil, r.Warnings(), err
		}
	}
	if prop.Rent.WithHotel, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	if prop.HouseCost, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	if prop.MortgageValue, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	if prop.LastRentPaid, err = r.I64(); err != nil {
		return nil, r.Warnings(), err
	}
	if prop.IsInitialized, err = r.Bool(); err != nil {
		return nil, r.Warnings(), err
	}

	prop.backfill(colorByte, typeByte)
	return prop, r.Warnings(), nil
}

// backfill supplies the canonical board defaults wherever the on-chain
// record carries a zero or absent value.
func (p *PropertyState) backfill(colorByte, typeByte uint8) {
	info, ok := board.Lookup(p.Position)
	if !ok {
		return
	}

	p.ColorGroup = colorGroupFromByte(colorByte, info.Color)
	p.PropertyType = spaceTypeFromByte(typeByte, info.Type)

	if p.Price == 0 {
		p.Price = info.Price
	}
	if p.Rent == (board.RentSchedule{}) {
		p.Rent = info.Rent
	}
	if p.HouseCost == 0 {
		p.HouseCost = info.HouseCost
	}
	if p.MortgageValue == 0 {
		if info.MortgageValue != 0 {
			p.MortgageValue = info.MortgageValue
		} else {
			p.MortgageValue = board.MortgageDefault(p.Price)
		}
	}
}

var colorGroups = []board.ColorGroup{
	board.GroupNone,
	board.GroupBrown,
	board.GroupLightBlue,
	board.GroupPink,
	board.GroupOrange,
	board.GroupRed,
	board.GroupYellow,
	board.GroupGreen,
	board.GroupDarkBlue,
}

func colorGroupFromByte(b uint8, fallback board.ColorGroup) board.ColorGroup {
	if int(b) >= len(colorGroups) || colorGroups[b] == board.GroupNone {
		return fallback
	}
	return colorGroups[b]
}

var spaceTypes = []board.SpaceType{
	board.TypeProperty,
	board.TypeRailroad,
	board.TypeUtility,
	board.TypeCorner,
	board.TypeTax,
	board.TypeChance,
	board.TypeCommunityChest,
}

func spaceTypeFromByte(b uint8, fallback board.SpaceType) board.SpaceType {
	if int(b) >= len(spaceTypes) {
		return fallback
	}
	return spaceTypes[b]
}
