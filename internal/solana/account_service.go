package solana

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

var ErrAccountDataMissing = errors.New("account has no binary data")

const (
	// fetchChunkSize bounds how many single-account fetches run at once so
	// the RPC's rate limits are respected.
	fetchChunkSize  = 10
	interChunkDelay = 200 * time.Millisecond
)

// AccountService retrieves raw account snapshots from the ledger, singly
// with retry or in bulk with a fallback ladder.
type AccountService struct {
	logs      *zap.SugaredLogger
	client    ChainClient
	programID solana.PublicKey
	retry     RetryPolicy
}

func NewAccountService(logger *zap.SugaredLogger, client ChainClient, programID solana.PublicKey, retry RetryPolicy) *AccountService {
	return &AccountService{
		logs:      logger,
		client:    client,
		programID: programID,
		retry:     retry,
	}
}

// FetchAccount retrieves one account with bounded exponential backoff.
// "Not visible yet" keeps retrying up to the policy cap and then returns
// (nil, nil); an account that exists but carries no binary data fails
// immediately without further retries.
func (s *AccountService) FetchAccount(ctx context.Context, address solana.PublicKey) (*RawAccount, error) {
	var lastErr error
	for attempt := 0; attempt < s.retry.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.retry.Delay(attempt - 1)):
			}
		}

		res, err := s.client.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
			Commitment: rpc.CommitmentConfirmed,
		})
		if err != nil {
			lastErr = err
			s.logs.Warnw("account fetch attempt failed",
				"address", address.String(),
				"attempt", attempt+1,
				"error", err)
			continue
		}
		if res.Value == nil {
			lastErr = rpc.ErrNotFound
			continue
		}

		data := res.Value.Data.GetBinary()
		if data == nil {
			return nil, fmt.Errorf("%w: %s", ErrAccountDataMissing, address.String())
		}

		return &RawAccount{
			Address:    address,
			Data:       data,
			Lamports:   res.Value.Lamports,
			Slot:       res.RPCContext.Context.Slot,
			CapturedAt: time.Now().UTC(),
		}, nil
	}

	s.logs.Infow("account not found after retries",
		"address", address.String(),
		"attempts", s.retry.MaxAttempts,
		"last_error", lastErr)
	return nil, nil
}

// FetchAccounts fetches many accounts concurrently in bounded chunks with a
// short delay between chunks.
func (s *AccountService) FetchAccounts(ctx context.Context, addresses []solana.PublicKey) ([]RawAccount, error) {
	results := make(chan fetchResult)

	go func() {
		var wg sync.WaitGroup
		for start := 0; start < len(addresses); start += fetchChunkSize {
			end := min(start+fetchChunkSize, len(addresses))
			for _, address := range addresses[start:end] {
				wg.Add(1)
				go func(address solana.PublicKey) {
					defer wg.Done()
					acc, err := s.FetchAccount(ctx, address)
					if err != nil {
						err = fmt.Errorf("fetching account %q: %w", address.String(), err)
					}
					results <- fetchResult{Account: acc, Error: err}
				}(address)
			}
			wg.Wait()
			if end < len(addresses) {
				time.Sleep(interChunkDelay)
			}
		}
		close(results)
	}()

	var accounts []RawAccount
	var aggrErr error
	for result := range results {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		if result.Account != nil {
			accounts = append(accounts, *result.Account)
		}
	}

	return accounts, aggrErr
}

// FetchProgramAccounts scans every account owned by the program. It tries a
// single unfiltered request first; when that fails it falls back to a
// preliminary discriminator scan followed by one filtered request per
// discovered bucket, deduplicated by address.
func (s *AccountService) FetchProgramAccounts(ctx context.Context) ([]RawAccount, error) {
	slot, err := s.client.GetSlot(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		s.logs.Warnw("slot lookup failed, snapshots will carry slot 0", "error", err)
		slot = 0
	}

	out, err := s.client.GetProgramAccountsWithOpts(ctx, s.programID, &rpc.GetProgramAccountsOpts{
		Commitment: rpc.CommitmentConfirmed,
		Encoding:   solana.EncodingBase64,
	})
	if err == nil {
		return s.keyedToRaw(out, slot), nil
	}

	s.logs.Warnw("unfiltered program scan failed, falling back to bucketed scan", "error", err)
	return s.fetchByDiscriminatorBuckets(ctx, slot)
}

func (s *AccountService) fetchByDiscriminatorBuckets(ctx context.Context, slot uint64) ([]RawAccount, error) {
	zero, tagLen := uint64(0), uint64(8)
	scan, err := s.client.GetProgramAccountsWithOpts(ctx, s.programID, &rpc.GetProgramAccountsOpts{
		Commitment: rpc.CommitmentConfirmed,
		Encoding:   solana.EncodingBase64,
		DataSlice:  &rpc.DataSlice{Offset: &zero, Length: &tagLen},
	})
	if err != nil {
		return nil, fmt.Errorf("discriminator scan: %w", err)
	}

	buckets := make(map[[8]byte]struct{})
	for _, keyed := range scan {
		data := keyed.Account.Data.GetBinary()
		if len(data) < 8 {
			continue
		}
		var tag [8]byte
		copy(tag[:], data)
		buckets[tag] = struct{}{}
	}

	s.logs.Infow("bucketed program scan", "buckets", len(buckets), "accounts_seen", len(scan))

	seen := make(map[solana.PublicKey]struct{})
	var accounts []RawAccount
	for tag := range buckets {
		out, err := s.client.GetProgramAccountsWithOpts(ctx, s.programID, &rpc.GetProgramAccountsOpts{
			Commitment: rpc.CommitmentConfirmed,
			Encoding:   solana.EncodingBase64,
			Filters: []rpc.RPCFilter{
				{Memcmp: &rpc.RPCFilterMemcmp{Offset: 0, Bytes: solana.Base58(tag[:])}},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("bucket fetch: %w", err)
		}
		for _, raw := range s.keyedToRaw(out, slot) {
			if _, ok := seen[raw.Address]; ok {
				continue
			}
			seen[raw.Address] = struct{}{}
			accounts = append(accounts, raw)
		}
	}

	return accounts, nil
}

func (s *AccountService) keyedToRaw(out rpc.GetProgramAccountsResult, slot uint64) []RawAccount {
	now := time.Now().UTC()
	accounts := make([]RawAccount, 0, len(out))
	for _, keyed := range out {
		if keyed == nil || keyed.Account == nil {
			continue
		}
		data := keyed.Account.Data.GetBinary()
		if data == nil {
			s.logs.Warnw("program account without binary data skipped", "address", keyed.Pubkey.String())
			continue
		}
		accounts = append(accounts, RawAccount{
			Address:    keyed.Pubkey,
			Data:       data,
			Lamports:   keyed.Account.Lamports,
			Slot:       slot,
			CapturedAt: now,
		})
	}
	return accounts
}
