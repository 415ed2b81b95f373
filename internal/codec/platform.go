package codec

import "github.com/gagliardetto/solana-go"

// PlatformConfig is the decoded singleton program configuration account.
type PlatformConfig struct {
	Address           solana.PublicKey
	ID                solana.PublicKey
	Authority         solana.PublicKey
	FeeBasisPoints    uint16
	FeeVault          solana.PublicKey
	TotalGamesCreated uint64
	NextGameID        uint64
	Bump              uint8
}

// DecodePlatformConfig decodes a raw platform config account buffer.
func DecodePlatformConfig(address solana.PublicKey, data []byte) (*PlatformConfig, []string, error) {
	r := NewReader(data[min(DiscriminatorLength, len(data)):])
	cfg := &PlatformConfig{Address: address}
	var err error

	if cfg.ID, err = r.Pubkey(); err != nil {
		return nil, r.Warnings(), err
	}
	if cfg.Authority, err = r.Pubkey(); err != nil {
		return nil, r.Warnings(), err
	}
	if cfg.FeeBasisPoints, err = r.U16(); err != nil {
		return nil, r.Warnings(), err
	}
	if cfg.FeeVault, err = r.Pubkey(); err != nil {
		return nil, r.Warnings(), err
	}
	if cfg.TotalGamesCreated, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	if cfg.NextGameID, err = r.U64(); err != nil {
		return nil, r.Warnings(), err
	}
	if cfg.Bump, err = r.U8(); err != nil {
		return nil, r.Warnings(), err
	}

	return cfg, r.Warnings(), nil
}
