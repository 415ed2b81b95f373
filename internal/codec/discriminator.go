package codec

import "bytes"

// DiscriminatorLength is the fixed tag width prefixing every program account.
const DiscriminatorLength = 8

// AccountKind identifies the record type held by an account buffer.
type AccountKind int

const (
	KindUnknown AccountKind = iota
	KindGameState
	KindPlayerState
	KindPropertyState
	KindPlatformConfig
)

func (k AccountKind) String() string {
	switch k {
	case KindGameState:
		return "game_state"
	case KindPlayerState:
		return "player_state"
	case KindPropertyState:
		return "property_state"
	case KindPlatformConfig:
		return "platform_config"
	default:
		return "unknown"
	}
}

// Account discriminators: sha256("account:<Name>")[0:8].
var (
	GameStateDiscriminator      = []byte{0x90, 0x5e, 0xd0, 0xac, 0xf8, 0x63, 0x86, 0x78}
	PlayerStateDiscriminator    = []byte{0x38, 0x03, 0x3c, 0x56, 0xae, 0x10, 0xf4, 0xc3}
	PropertyStateDiscriminator  = []byte{0xcf, 0x5e, 0xde, 0x5e, 0xb2, 0x0a, 0x05, 0x5d}
	PlatformConfigDiscriminator = []byte{0xa0, 0x4e, 0x80, 0x00, 0xf8, 0x53, 0xe6, 0xa0}
)

// Discriminate maps the first 8 bytes of a buffer to an account kind.
// Buffers shorter than the discriminator are simply unknown, not an error.
func Discriminate(data []byte) AccountKind {
	if len(data) < DiscriminatorLength {
		return KindUnknown
	}
	tag := data[:DiscriminatorLength]
	switch {
	case bytes.Equal(tag, GameStateDiscriminator):
		return KindGameState
	case bytes.Equal(tag, PlayerStateDiscriminator):
		return KindPlayerState
	case bytes.Equal(tag, PropertyStateDiscriminator):
		return KindPropertyState
	case bytes.Equal(tag, PlatformConfigDiscriminator):
		return KindPlatformConfig
	default:
		return KindUnknown
	}
}

// DiscriminatorFor returns the tag for a known account kind, or nil.
func DiscriminatorFor(kind AccountKind) []byte {
	switch kind {
	case KindGameState:
		return GameStateDiscriminator
	case KindPlayerState:
		return PlayerStateDiscriminator
	case KindPropertyState:
		return PropertyStateDiscriminator
	case KindPlatformConfig:
		return PlatformConfigDiscriminator
	default:
		return nil
	}
}
