package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/WeShipHQ/panda-monopoly-sub001/internal/db"
	"github.com/google/uuid"
)

var (
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrCheckpointNotFound = errors.New("checkpoint not found")
	ErrGameNotFound       = errors.New("game not found")
)

// IndexerRepository persists decoded records and serves the read API.
type IndexerRepository struct {
	db Storage
}

func NewIndexerRepository(db Storage) *IndexerRepository {
	return &IndexerRepository{
		db: db,
	}
}

func (r *IndexerRepository) MigrateAndSeed(ctx context.Context) error {

	err := r.db.MigrateTable(
		&Game{},
		&Player{},
		&Property{},
		&PlatformConfig{},
		&RawAccount{},
		&FailedAccount{},
		&Checkpoint{},
		&Operator{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	operators := []Operator{
		{
			ID:           uuid.NewString(),
			Username:     "admin",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
	}
	err = r.db.Seed(ctx, &operators)
	if err != nil {
		return fmt.Errorf("seed operators: %w", err)
	}

	return nil
}

func (r *IndexerRepository) UpsertGames(ctx context.Context, games []Game) error {
	if err := r.db.Upsert(ctx, &games); err != nil {
		return fmt.Errorf("upsert games: %w", err)
	}
	return nil
}

func (r *IndexerRepository) UpsertPlayers(ctx context.Context, players []Player) error {
	if err := r.db.Upsert(ctx, &players); err != nil {
		return fmt.Errorf("upsert players: %w", err)
	}
	return nil
}

func (r *IndexerRepository) UpsertProperties(ctx context.Context, properties []Property) error {
	if err := r.db.Upsert(ctx, &properties); err != nil {
		return fmt.Errorf("upsert properties: %w", err)
	}
	return nil
}

func (r *IndexerRepository) UpsertPlatformConfigs(ctx context.Context, configs []PlatformConfig) error {
	if err := r.db.Upsert(ctx, &configs); err != nil {
		return fmt.Errorf("upsert platform configs: %w", err)
	}
	return nil
}

func (r *IndexerRepository) SaveRawAccounts(ctx context.Context, accounts []RawAccount) error {
	if err := r.db.Insert(ctx, &accounts); err != nil {
		return fmt.Errorf("save raw accounts: %w", err)
	}
	return nil
}

func (r *IndexerRepository) SaveFailedAccounts(ctx context.Context, failed []FailedAccount) error {
	if err := r.db.Insert(ctx, &failed); err != nil {
		return fmt.Errorf("save failed accounts: %w", err)
	}
	return nil
}

func (r *IndexerRepository) SaveCheckpoint(ctx context.Context, checkpoint Checkpoint) error {
	checkpoints := []Checkpoint{checkpoint}
	if err := r.db.Upsert(ctx, &checkpoints); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}

func (r *IndexerRepository) GetCheckpoint(ctx context.Context, streamID string) (Checkpoint, error) {
	var checkpoint Checkpoint
	err := r.db.GetOneBy(ctx, "stream_id", streamID, &checkpoint)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Checkpoint{}, ErrCheckpointNotFound
		}
		return Checkpoint{}, fmt.Errorf("get checkpoint: %w", err)
	}
	return checkpoint, nil
}

func (r *IndexerRepository) ListGames(ctx context.Context) ([]Game, error) {
	games := []Game{}
	if err := r.db.ListAll(ctx, &games); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

func (r *IndexerRepository) GetGame(ctx context.Context, pubkey string) (Game, error) {
	var game Game
	err := r.db.GetOneBy(ctx, "pubkey", pubkey, &game)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Game{}, ErrGameNotFound
		}
		return Game{}, fmt.Errorf("get game: %w", err)
	}
	return game, nil
}

func (r *IndexerRepository) GetPlayersByGame(ctx context.Context, gamePubkey string) ([]Player, error) {
	players := []Player{}
	if err := r.db.GetAllBy(ctx, "game", []string{gamePubkey}, &players); err != nil {
		return nil, fmt.Errorf("get players by game: %w", err)
	}
	return players, nil
}

func (r *IndexerRepository) GetPropertiesByGame(ctx context.Context, gamePubkey string) ([]Property, error) {
	properties := []Property{}
	if err := r.db.GetAllBy(ctx, "game", []string{gamePubkey}, &properties); err != nil {
		return nil, fmt.Errorf("get properties by game: %w", err)
	}
	return properties, nil
}

func (r *IndexerRepository) GetOperator(ctx context.Context, username string) (Operator, error) {
	var operator Operator
	err := r.db.GetOneBy(ctx, "username", username, &operator)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Operator{}, ErrOperatorNotFound
		}
		return Operator{}, fmt.Errorf("get operator by username: %w", err)
	}
	return operator, nil
}
