package repository

import "time"

// Game is the materialized row for one game account. Nested collections
// (players, trades, board array) are stored as JSON documents.
type Game struct {
	Pubkey             string `gorm:"primaryKey;size:44"`
	GameID             int64  `gorm:"not null;index"`
	ConfigID           string `gorm:"size:44;not null"`
	Authority          string `gorm:"size:44;not null"`
	Bump               int16  `gorm:"not null"`
	MaxPlayers         int16  `gorm:"not null"`
	CurrentPlayers     int16  `gorm:"not null"`
	CurrentTurn        int16  `gorm:"not null"`
	Players            string `gorm:"type:jsonb"`
	TotalPlayersJoined int16  `gorm:"not null;default:0"`
	ActivePlayers      int16  `gorm:"not null;default:0"`
	Status             string `gorm:"size:32;not null;index"`
	BankBalance        int64  `gorm:"not null;default:0"`
	FreeParkingPool    int64  `gorm:"not null;default:0"`
	HousesRemaining    int16  `gorm:"not null;default:0"`
	HotelsRemaining    int16  `gorm:"not null;default:0"`
	Winner             *string `gorm:"size:44"`
	EntryFee           int64  `gorm:"not null;default:0"`
	PrizePool          int64  `gorm:"not null;default:0"`
	TokenMint          *string `gorm:"size:44"`
	EndReason          *int16
	Trades             string `gorm:"type:jsonb"`
	Properties         string `gorm:"type:jsonb"`
	ChainCreatedAt     int64  `gorm:"not null;default:0"`
	StartedAt          *int64
	EndedAt            *int64
	GameEndTime        *int64
	TurnTimeLimit      *int64
	AccountUpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Player is the materialized row for one player account.
type Player struct {
	Pubkey                      string `gorm:"primaryKey;size:44"`
	Wallet                      string `gorm:"size:44;not null;index"`
	Game                        string `gorm:"size:44;not null;index"`
	CashBalance                 int64  `gorm:"not null;default:0"`
	Position                    int16  `gorm:"not null;default:0"`
	InJail                      bool   `gorm:"not null;default:false"`
	JailTurns                   int16  `gorm:"not null;default:0"`
	DoublesCount                int16  `gorm:"not null;default:0"`
	IsBankrupt                  bool   `gorm:"not null;default:false"`
	PropertiesOwned             string `gorm:"type:jsonb"`
	GetOutOfJailCards           int16  `gorm:"not null;default:0"`
	NetWorth                    int64  `gorm:"not null;default:0"`
	LastRentCollected           int64  `gorm:"not null;default:0"`
	FestivalBoostTurns          int16  `gorm:"not null;default:0"`
	HasRolledDice               bool   `gorm:"not null;default:false"`
	DiceRollFirst               int16  `gorm:"not null;default:0"`
	DiceRollSecond              int16  `gorm:"not null;default:0"`
	NeedsPropertyAction         bool   `gorm:"not null;default:false"`
	PendingPropertyPosition     *int16
	NeedsChanceCard             bool `gorm:"not null;default:false"`
	NeedsCommunityChestCard     bool `gorm:"not null;default:false"`
	NeedsBankruptcyCheck        bool `gorm:"not null;default:false"`
	NeedsSpecialSpaceAction     bool `gorm:"not null;default:false"`
	PendingSpecialSpacePosition *int16
	CardDrawnAt                 *int64
	AccountUpdatedAt            time.Time `gorm:"autoUpdateTime"`
}

// Property is the materialized row for one property account.
type Property struct {
	Pubkey             string  `gorm:"primaryKey;size:44"`
	Position           int16   `gorm:"not null;index"`
	Game               string  `gorm:"size:44;not null;index"`
	Owner              *string `gorm:"size:44"`
	Price              int64   `gorm:"not null;default:0"`
	ColorGroup         string  `gorm:"size:20;not null"`
	PropertyType       string  `gorm:"size:20;not null"`
	Houses             int16   `gorm:"not null;default:0"`
	HasHotel           bool    `gorm:"not null;default:false"`
	IsMortgaged        bool    `gorm:"not null;default:false"`
	RentBase           int64   `gorm:"not null;default:0"`
	RentWithColorGroup int64   `gorm:"not null;default:0"`
	RentOneHouse       int64   `gorm:"not null;default:0"`
	RentTwoHouses      int64   `gorm:"not null;default:0"`
	RentThreeHouses    int64   `gorm:"not null;default:0"`
	RentFourHouses     int64   `gorm:"not null;default:0"`
	RentHotel          int64   `gorm:"not null;default:0"`
	HouseCost          int64   `gorm:"not null;default:0"`
	MortgageValue      int64   `gorm:"not null;default:0"`
	LastRentPaid       int64   `gorm:"not null;default:0"`
	IsInitialized      bool    `gorm:"not null;default:false"`
	AccountUpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// PlatformConfig is the materialized row for the program configuration.
type PlatformConfig struct {
	Pubkey            string    `gorm:"primaryKey;size:44"`
	Authority         string    `gorm:"size:44;not null"`
	FeeBasisPoints    int32     `gorm:"not null;default:0"`
	FeeVault          string    `gorm:"size:44;not null"`
	TotalGamesCreated int64     `gorm:"not null;default:0"`
	NextGameID        int64     `gorm:"not null;default:0"`
	Bump              int16     `gorm:"not null;default:0"`
	AccountUpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// RawAccount is the append-only verbatim backup of fetched bytes, kept for
// forensic replay of decode failures.
type RawAccount struct {
	ID        uint      `gorm:"primaryKey"`
	Pubkey    string    `gorm:"size:44;not null;index"`
	Lamports  int64     `gorm:"not null;default:0"`
	Slot      int64     `gorm:"not null;default:0"`
	Data      []byte    `gorm:"type:bytea"`
	ScrapedAt time.Time `gorm:"autoCreateTime"`
}

// FailedAccount records an account that could not be decoded, for manual
// triage. Append-only.
type FailedAccount struct {
	ID         uint      `gorm:"primaryKey"`
	Pubkey     string    `gorm:"size:44;not null;index"`
	Kind       string    `gorm:"size:32;not null"`
	Reason     string    `gorm:"type:text;not null"`
	Data       []byte    `gorm:"type:bytea"`
	ReportedAt time.Time `gorm:"autoCreateTime"`
}

// Checkpoint marks sync progress per stream. Advisory only; upserts are
// idempotent so replays without it are safe.
type Checkpoint struct {
	StreamID      string    `gorm:"primaryKey;size:64"`
	LastSlot      int64     `gorm:"not null;default:0"`
	LastSignature string    `gorm:"size:96"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// Operator is an API operator account allowed to trigger manual passes.
type Operator struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
