package core

import (
	"context"

	"github.com/WeShipHQ/panda-monopoly-sub001/internal/repository"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/solana"
	tokenIssuer "github.com/WeShipHQ/panda-monopoly-sub001/pkg/jwt"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	UpsertGames(ctx context.Context, games []repository.Game) error
	UpsertPlayers(ctx context.Context, players []repository.Player) error
	UpsertProperties(ctx context.Context, properties []repository.Property) error
	UpsertPlatformConfigs(ctx context.Context, configs []repository.PlatformConfig) error
	SaveRawAccounts(ctx context.Context, accounts []repository.RawAccount) error
	SaveFailedAccounts(ctx context.Context, failed []repository.FailedAccount) error
	SaveCheckpoint(ctx context.Context, checkpoint repository.Checkpoint) error
	ListGames(ctx context.Context) ([]repository.Game, error)
	GetGame(ctx context.Context, pubkey string) (repository.Game, error)
	GetPlayersByGame(ctx context.Context, gamePubkey string) ([]repository.Player, error)
	GetPropertiesByGame(ctx context.Context, gamePubkey string) ([]repository.Property, error)
	GetOperator(ctx context.Context, username string) (repository.Operator, error)
}

//counterfeiter:generate -o fake -fake-name LedgerService . LedgerService
type LedgerService interface {
	FetchProgramAccounts(ctx context.Context) ([]solana.RawAccount, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
