// Package board holds the static metadata for the 40 board spaces. The
// on-chain accounts only carry the mutable subset of a property (owner,
// houses, hotel, mortgage); price, color group and the rent schedule are
// fixed by the board layout and backfilled from this table after decode.
package board

// Size is the number of spaces on the board.
const Size = 40

type SpaceType string

const (
	TypeProperty       SpaceType = "property"
	TypeRailroad       SpaceType = "railroad"
	TypeUtility        SpaceType = "utility"
	TypeCorner         SpaceType = "corner"
	TypeTax            SpaceType = "tax"
	TypeChance         SpaceType = "chance"
	TypeCommunityChest SpaceType = "community_chest"
)

type ColorGroup string

const (
	GroupNone      ColorGroup = "none"
	GroupBrown     ColorGroup = "brown"
	GroupLightBlue ColorGroup = "light_blue"
	GroupPink      ColorGroup = "pink"
	GroupOrange    ColorGroup = "orange"
	GroupRed       ColorGroup = "red"
	GroupYellow    ColorGroup = "yellow"
	GroupGreen     ColorGroup = "green"
	GroupDarkBlue  ColorGroup = "dark_blue"
)

// RentSchedule is the fixed rent ladder for a property space.
type RentSchedule struct {
	Base           uint64
	WithColorGroup uint64
	WithHouses     [4]uint64
	WithHotel      uint64
}

type SpaceInfo struct {
	Position      uint8
	Name          string
	Type          SpaceType
	Color         ColorGroup
	Price         uint64
	Rent          RentSchedule
	HouseCost     uint64
	MortgageValue uint64
}

// MortgageDefault is the canonical mortgage value for a price when the
// on-chain record carries none.
func MortgageDefault(price uint64) uint64 {
	return price / 2
}

func prop(pos uint8, name string, color ColorGroup, price uint64, rents [6]uint64, houseCost uint64) SpaceInfo {
	return SpaceInfo{
		Position: pos,
		Name:     name,
		Type:     TypeProperty,
		Color:    color,
		Price:    price,
		Rent: RentSchedule{
			Base:           rents[0],
			WithColorGroup: rents[0] * 2,
			WithHouses:     [4]uint64{rents[1], rents[2], rents[3], rents[4]},
			WithHotel:      rents[5],
		},
		HouseCost:     houseCost,
		MortgageValue: MortgageDefault(price),
	}
}

func railroad(pos uint8, name string) SpaceInfo {
	return SpaceInfo{Position: pos, Name: name, Type: TypeRailroad, Color: GroupNone, Price: 200, Rent: RentSchedule{Base: 25}, MortgageValue: 100}
}

func utility(pos uint8, name string) SpaceInfo {
	return SpaceInfo{Position: pos, Name: name, Type: TypeUtility, Color: GroupNone, Price: 150, MortgageValue: 75}
}

func special(pos uint8, name string, t SpaceType) SpaceInfo {
	return SpaceInfo{Position: pos, Name: name, Type: t, Color: GroupNone}
}

var spaces = [Size]SpaceInfo{
	special(0, "GO", TypeCorner),
	prop(1, "Mediterranean Avenue", GroupBrown, 60, [6]uint64{2, 10, 30, 90, 160, 250}, 50),
	special(2, "Community Chest", TypeCommunityChest),
	prop(3, "Baltic Avenue", GroupBrown, 60, [6]uint64{4, 20, 60, 180, 320, 450}, 50),
	special(4, "Income Tax", TypeTax),
	railroad(5, "Reading Railroad"),
	prop(6, "Oriental Avenue", GroupLightBlue, 100, [6]uint64{6, 30, 90, 270, 400, 550}, 50),
	special(7, "Chance", TypeChance),
	prop(8, "Vermont Avenue", GroupLightBlue, 100, [6]uint64{6, 30, 90, 270, 400, 550}, 50),
	prop(9, "Connecticut Avenue", GroupLightBlue, 120, [6]uint64{8, 40, 100, 300, 450, 600}, 50),
	special(10, "Jail", TypeCorner),
	prop(11, "St. Charles Place", GroupPink, 140, [6]uint64{10, 50, 150, 450, 625, 750}, 100),
	utility(12, "Electric Company"),
	prop(13, "States Avenue", GroupPink, 140, [6]uint64{10, 50, 150, 450, 625, 750}, 100),
	prop(14, "Virginia Avenue", GroupPink, 160, [6]uint64{12, 60, 180, 500, 700, 900}, 100),
	railroad(15, "Pennsylvania Railroad"),
	prop(16, "St. James Place", GroupOrange, 180, [6]uint64{14, 70, 200, 550, 750, 950}, 100),
	special(17, "Community Chest", TypeCommunityChest),
	prop(18, "Tennessee Avenue", GroupOrange, 180, [6]uint64{14, 70, 200, 550, 750, 950}, 100),
	prop(19, "New York Avenue", GroupOrange, 200, [6]uint64{16, 80, 220, 600, 800, 1000}, 100),
	special(20, "Free Parking", TypeCorner),
	prop(21, "Kentucky Avenue", GroupRed, 220, [6]uint64{18, 90, 250, 700, 875, 1050}, 150),
	special(22, "Chance", TypeChance),
	prop(23, "Indiana Avenue", GroupRed, 220, [6]uint64{18, 90, 250, 700, 875, 1050}, 150),
	prop(24, "Illinois Avenue", GroupRed, 240, [6]uint64{20, 100, 300, 750, 925, 1100}, 150),
	railroad(25, "B&O Railroad"),
	prop(26, "Atlantic Avenue", GroupYellow, 260, [6]uint64{22, 110, 330, 800, 975, 1150}, 150),
	prop(27, "Ventnor Avenue", GroupYellow, 260, [6]uint64{22, 110, 330, 800, 975, 1150}, 150),
	utility(28, "Water Works"),
	prop(29, "Marvin Gardens", GroupYellow, 280, [6]uint64{24, 120, 360, 850, 1025, 1200}, 150),
	special(30, "Go To Jail", TypeCorner),
	prop(31, "Pacific Avenue", GroupGreen, 300, [6]uint64{26, 130, 390, 900, 1100, 1275}, 200),
	prop(32, "North Carolina Avenue", GroupGreen, 300, [6]uint64{26, 130, 390, 900, 1100, 1275}, 200),
	special(33, "Community Chest", TypeCommunityChest),
	prop(34, "Pennsylvania Avenue", GroupGreen, 320, [6]uint64{28, 150, 450, 1000, 1200, 1400}, 200),
	railroad(35, "Short Line"),
	special(36, "Chance", TypeChance),
	prop(37, "Park Place", GroupDarkBlue, 350, [6]uint64{35, 175, 500, 1100, 1300, 1500}, 200),
	special(38, "Luxury Tax", TypeTax),
	prop(39, "Boardwalk", GroupDarkBlue, 400, [6]uint64{50, 200, 600, 1400, 1700, 2000}, 200),
}

// Lookup returns the static metadata for a board position.
func Lookup(position uint8) (SpaceInfo, bool) {
	if position >= Size {
		return SpaceInfo{}, false
	}
	return spaces[position], true
}
