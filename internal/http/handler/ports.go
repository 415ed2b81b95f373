package handler

import (
	"context"
	"net/http"

	"github.com/WeShipHQ/panda-monopoly-sub001/internal/core"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SyncService . SyncService
type SyncService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	ValidateToken(token string) error
	RunPass(ctx context.Context) (*core.PassSummary, error)
	LastSummary() *core.PassSummary
	ListGames(ctx context.Context) ([]repository.Game, error)
	GetGame(ctx context.Context, pubkey string) (repository.Game, error)
	GetGamePlayers(ctx context.Context, gamePubkey string) ([]repository.Player, error)
	GetGameProperties(ctx context.Context, gamePubkey string) ([]repository.Property, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
