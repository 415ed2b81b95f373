package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/WeShipHQ/panda-monopoly-sub001/internal/codec"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/repository"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/solana"
	tokenIssuer "github.com/WeShipHQ/panda-monopoly-sub001/pkg/jwt"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrOperatorNotFound error = errors.New("operator not found")

const (
	decodeWorkers     = 8
	storeWriteRetries = 3
	storeRetryDelay   = time.Second
)

// Syncer drives full fetch-decode-upsert passes over the program's accounts
// and serves the read API on top of the materialized store.
type Syncer struct {
	logs      *zap.SugaredLogger
	repo      Repository
	ledger    LedgerService
	jwtIssuer JWTIssuer
	streamID  string

	mu          sync.Mutex
	lastSummary *PassSummary
}

func NewSyncer(logger *zap.SugaredLogger, repo Repository, ledger LedgerService, jwt JWTIssuer, streamID string) *Syncer {
	return &Syncer{
		logs:      logger,
		repo:      repo,
		ledger:    ledger,
		jwtIssuer: jwt,
		streamID:  streamID,
	}
}

// decoded is the partition slot for one classified account.
type decoded struct {
	game     *repository.Game
	player   *repository.Player
	property *repository.Property
	config   *repository.PlatformConfig
	failed   *repository.FailedAccount
	unknown  bool
	clamps   int
}

// RunPass performs one full sync pass. Per-account decode failures are
// reported and skipped; only a store write that keeps failing after retries
// aborts the pass.
func (s *Syncer) RunPass(ctx context.Context) (*PassSummary, error) {
	summary := &PassSummary{StartedAt: time.Now().UTC()}

	accounts, err := s.ledger.FetchProgramAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch program accounts: %w", err)
	}
	summary.Fetched = len(accounts)
	for _, acc := range accounts {
		if acc.Slot > summary.HighestSlot {
			summary.HighestSlot = acc.Slot
		}
	}

	// Raw bytes are backed up before decoding so a parse failure never
	// loses the underlying buffer. Best effort.
	s.backupRaw(ctx, accounts)

	results := s.decodeAll(accounts)

	var games []repository.Game
	var players []repository.Player
	var properties []repository.Property
	var configs []repository.PlatformConfig
	var failed []repository.FailedAccount

	for _, res := range results {
		summary.Clamps += res.clamps
		switch {
		case res.game != nil:
			games = append(games, *res.game)
		case res.player != nil:
			players = append(players, *res.player)
		case res.property != nil:
			properties = append(properties, *res.property)
		case res.config != nil:
			configs = append(configs, *res.config)
		case res.failed != nil:
			failed = append(failed, *res.failed)
		case res.unknown:
			summary.Unknown++
		}
	}
	summary.Games = len(games)
	summary.Players = len(players)
	summary.Properties = len(properties)
	summary.Configs = len(configs)
	summary.Failed = len(failed)

	err = s.writeWithRetry(ctx, func() error {
		if err := s.repo.UpsertGames(ctx, games); err != nil {
			return err
		}
		if err := s.repo.UpsertPlayers(ctx, players); err != nil {
			return err
		}
		if err := s.repo.UpsertProperties(ctx, properties); err != nil {
			return err
		}
		return s.repo.UpsertPlatformConfigs(ctx, configs)
	})
	if err != nil {
		return nil, fmt.Errorf("store write failed after %d attempts: %w", storeWriteRetries, err)
	}

	if len(failed) > 0 {
		if err := s.repo.SaveFailedAccounts(ctx, failed); err != nil {
			s.logs.Errorw("failed-accounts sink write failed", "error", err, "count", len(failed))
		}
	}

	if err := s.repo.SaveCheckpoint(ctx, repository.Checkpoint{
		StreamID: s.streamID,
		LastSlot: int64(summary.HighestSlot),
	}); err != nil {
		s.logs.Errorw("checkpoint write failed", "error", err)
	}

	summary.FinishedAt = time.Now().UTC()
	s.mu.Lock()
	s.lastSummary = summary
	s.mu.Unlock()

	s.logs.Infow("sync pass finished",
		"fetched", summary.Fetched,
		"games", summary.Games,
		"players", summary.Players,
		"properties", summary.Properties,
		"configs", summary.Configs,
		"unknown", summary.Unknown,
		"failed", summary.Failed,
		"clamps", summary.Clamps,
		"highest_slot", summary.HighestSlot)

	return summary, nil
}

// LastSummary returns the most recent pass summary, or nil before any pass.
func (s *Syncer) LastSummary() *PassSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSummary
}

func (s *Syncer) backupRaw(ctx context.Context, accounts []solana.RawAccount) {
	if len(accounts) == 0 {
		return
	}
	rows := make([]repository.RawAccount, 0, len(accounts))
	for _, acc := range accounts {
		rows = append(rows, rawToRow(acc))
	}
	if err := s.repo.SaveRawAccounts(ctx, rows); err != nil {
		s.logs.Errorw("raw account backup failed", "error", err, "count", len(rows))
	}
}

// decodeAll classifies and decodes every buffer. Decoding is pure and
// independent per account, so it fans out over a bounded worker pool.
func (s *Syncer) decodeAll(accounts []solana.RawAccount) []decoded {
	results := make([]decoded, len(accounts))

	pool, err := ants.NewPool(decodeWorkers)
	if err != nil {
		for i, acc := range accounts {
			results[i] = s.decodeOne(acc)
		}
		return results
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, acc := range accounts {
		i, acc := i, acc
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = s.decodeOne(acc)
		}
		if err := pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	return results
}

func (s *Syncer) decodeOne(acc solana.RawAccount) decoded {
	kind := codec.Discriminate(acc.Data)

	var warnings []string
	var err error
	var out decoded

	switch kind {
	case codec.KindGameState:
		var gs *codec.GameState
		gs, warnings, err = codec.DecodeGameState(acc.Address, acc.Data)
		if err == nil {
			row, clampWarns := gameToRow(gs)
			out.game = &row
			warnings = append(warnings, clampWarns...)
		}
	case codec.KindPlayerState:
		var ps *codec.PlayerState
		ps, warnings, err = codec.DecodePlayerState(acc.Address, acc.Data)
		if err == nil {
			row, clampWarns := playerToRow(ps)
			out.player = &row
			warnings = append(warnings, clampWarns...)
		}
	case codec.KindPropertyState:
		var prop *codec.PropertyState
		prop, warnings, err = codec.DecodePropertyState(acc.Address, acc.Data)
		if err == nil {
			row, clampWarns := propertyToRow(prop)
			out.property = &row
			warnings = append(warnings, clampWarns...)
		}
	case codec.KindPlatformConfig:
		var cfg *codec.PlatformConfig
		cfg, warnings, err = codec.DecodePlatformConfig(acc.Address, acc.Data)
		if err == nil {
			row, clampWarns := configToRow(cfg)
			out.config = &row
			warnings = append(warnings, clampWarns...)
		}
	default:
		// Buffers with no known discriminator are irrelevant, not malformed.
		out.unknown = true
		return out
	}

	if err != nil {
		s.logs.Warnw("account decode failed",
			"address", acc.Address.String(),
			"kind", kind.String(),
			"buffer_len", len(acc.Data),
			"error", err)
		out.failed = &repository.FailedAccount{
			Pubkey: acc.Address.String(),
			Kind:   kind.String(),
			Reason: err.Error(),
			Data:   acc.Data,
		}
		return out
	}

	out.clamps = len(warnings)
	for _, w := range warnings {
		s.logs.Warnw("decode warning", "address", acc.Address.String(), "kind", kind.String(), "warning", w)
	}

	return out
}

func (s *Syncer) writeWithRetry(ctx context.Context, write func() error) error {
	var err error
	for attempt := 0; attempt < storeWriteRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(storeRetryDelay << (attempt - 1)):
			}
			s.logs.Warnw("retrying store write", "attempt", attempt+1, "error", err)
		}
		if err = write(); err == nil {
			return nil
		}
	}
	return err
}

// Authenticate checks operator credentials against the store and issues a
// JWT for the manual sync trigger.
func (s *Syncer) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	operator, err := s.repo.GetOperator(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrOperatorNotFound) {
			return "", ErrOperatorNotFound
		}
		return "", fmt.Errorf("get operator from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   operator.Username,
		Subject:    operator.ID,
		Expiration: 24,
	}
	token := s.jwtIssuer.Generate(tokenInfo)
	signed, err := s.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// ValidateToken checks a bearer token issued by Authenticate.
func (s *Syncer) ValidateToken(token string) error {
	if _, err := s.jwtIssuer.Validate(token); err != nil {
		return fmt.Errorf("validate jwt token: %w", err)
	}
	return nil
}

func (s *Syncer) ListGames(ctx context.Context) ([]repository.Game, error) {
	games, err := s.repo.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}
	return games, nil
}

func (s *Syncer) GetGame(ctx context.Context, pubkey string) (repository.Game, error) {
	game, err := s.repo.GetGame(ctx, pubkey)
	if err != nil {
		return repository.Game{}, fmt.Errorf("getting game: %w", err)
	}
	return game, nil
}

func (s *Syncer) GetGamePlayers(ctx context.Context, gamePubkey string) ([]repository.Player, error) {
	players, err := s.repo.GetPlayersByGame(ctx, gamePubkey)
	if err != nil {
		return nil, fmt.Errorf("getting game players: %w", err)
	}
	return players, nil
}

func (s *Syncer) GetGameProperties(ctx context.Context, gamePubkey string) ([]repository.Property, error) {
	properties, err := s.repo.GetPropertiesByGame(ctx, gamePubkey)
	if err != nil {
		return nil, fmt.Errorf("getting game properties: %w", err)
	}
	return properties, nil
}
