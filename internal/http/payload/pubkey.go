package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var base58Regex = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

type PubkeyParam struct {
	Pubkey string
}

func (p PubkeyParam) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Pubkey, validation.Required),
		validation.Field(&p.Pubkey, validation.Match(base58Regex)),
	)
}
