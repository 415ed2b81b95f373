package core_test

import (
	"context"
	"encoding/binary"
	"errors"
	"math"

	"github.com/WeShipHQ/panda-monopoly-sub001/internal/codec"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/core"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/core/fake"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/repository"
	solanasvc "github.com/WeShipHQ/panda-monopoly-sub001/internal/solana"
	tokenIssuer "github.com/WeShipHQ/panda-monopoly-sub001/pkg/jwt"
	"github.com/gagliardetto/solana-go"
	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func testPk(b byte) solana.PublicKey {
	var raw [32]byte
	for i := range raw {
		raw[i] = b
	}
	return solana.PublicKeyFromBytes(raw[:])
}

// Minimal well-formed buffers for each account kind: discriminator followed
// by an all-zero body of the smallest complete layout.
func minimalAccount(discriminator []byte, bodyLen int) []byte {
	return append(append([]byte{}, discriminator...), make([]byte, bodyLen)...)
}

func gameAccount() []byte     { return minimalAccount(codec.GameStateDiscriminator, 300) }
func playerAccount() []byte   { return minimalAccount(codec.PlayerStateDiscriminator, 108) }
func propertyAccount() []byte { return minimalAccount(codec.PropertyStateDiscriminator, 128) }
func configAccount() []byte   { return minimalAccount(codec.PlatformConfigDiscriminator, 115) }

func raw(address solana.PublicKey, slot uint64, data []byte) solanasvc.RawAccount {
	return solanasvc.RawAccount{Address: address, Data: data, Lamports: 1, Slot: slot}
}

var _ = Describe("Syncer", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLedger *fake.LedgerService
		fakeJWT    *fake.JWTIssuer
		ctx        context.Context

		syncer *core.Syncer

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLedger = new(fake.LedgerService)
		fakeJWT = new(fake.JWTIssuer)
		ctx = context.Background()

		syncer = core.NewSyncer(zap.NewNop().Sugar(), fakeRepo, fakeLedger, fakeJWT, "program-stream")

		fakeErr = errors.New("fake error")
	})

	Describe("RunPass", func() {
		When("the scan yields one account of each kind", func() {
			BeforeEach(func() {
				fakeLedger.FetchProgramAccountsReturns([]solanasvc.RawAccount{
					raw(testPk(1), 100, gameAccount()),
					raw(testPk(2), 101, playerAccount()),
					raw(testPk(3), 99, propertyAccount()),
					raw(testPk(4), 98, configAccount()),
				}, nil)
			})

			It("partitions by discriminator and upserts each batch", func() {
				summary, err := syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(summary.Fetched).To(Equal(4))
				Expect(summary.Games).To(Equal(1))
				Expect(summary.Players).To(Equal(1))
				Expect(summary.Properties).To(Equal(1))
				Expect(summary.Configs).To(Equal(1))
				Expect(summary.Failed).To(Equal(0))
				Expect(summary.Unknown).To(Equal(0))
				Expect(summary.HighestSlot).To(Equal(uint64(101)))

				Expect(fakeRepo.UpsertGamesCallCount()).To(Equal(1))
				_, games := fakeRepo.UpsertGamesArgsForCall(0)
				Expect(games).To(HaveLen(1))
				Expect(games[0].Pubkey).To(Equal(testPk(1).String()))

				Expect(fakeRepo.UpsertPlayersCallCount()).To(Equal(1))
				_, players := fakeRepo.UpsertPlayersArgsForCall(0)
				Expect(players).To(HaveLen(1))
				Expect(players[0].Pubkey).To(Equal(testPk(2).String()))

				Expect(fakeRepo.UpsertPropertiesCallCount()).To(Equal(1))
				_, properties := fakeRepo.UpsertPropertiesArgsForCall(0)
				Expect(properties).To(HaveLen(1))

				Expect(fakeRepo.UpsertPlatformConfigsCallCount()).To(Equal(1))
				_, configs := fakeRepo.UpsertPlatformConfigsArgsForCall(0)
				Expect(configs).To(HaveLen(1))
			})

			It("backs up every raw buffer before decoding", func() {
				_, err := syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.SaveRawAccountsCallCount()).To(Equal(1))
				_, rows := fakeRepo.SaveRawAccountsArgsForCall(0)
				Expect(rows).To(HaveLen(4))
			})

			It("records a checkpoint at the highest observed slot", func() {
				_, err := syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.SaveCheckpointCallCount()).To(Equal(1))
				_, checkpoint := fakeRepo.SaveCheckpointArgsForCall(0)
				Expect(checkpoint.StreamID).To(Equal("program-stream"))
				Expect(checkpoint.LastSlot).To(Equal(int64(101)))
			})

			It("publishes the summary through LastSummary", func() {
				Expect(syncer.LastSummary()).To(BeNil())

				summary, err := syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(syncer.LastSummary()).To(Equal(summary))
			})
		})

		When("a second pass sees the same accounts", func() {
			BeforeEach(func() {
				fakeLedger.FetchProgramAccountsReturns([]solanasvc.RawAccount{
					raw(testPk(1), 100, gameAccount()),
				}, nil)
			})

			It("produces the same upsert rows both times", func() {
				_, err := syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())
				_, err = syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.UpsertGamesCallCount()).To(Equal(2))
				_, first := fakeRepo.UpsertGamesArgsForCall(0)
				_, second := fakeRepo.UpsertGamesArgsForCall(1)
				Expect(second).To(Equal(first))
			})
		})

		When("an account has a known discriminator but a corrupt body", func() {
			BeforeEach(func() {
				fakeLedger.FetchProgramAccountsReturns([]solanasvc.RawAccount{
					raw(testPk(1), 100, gameAccount()),
					raw(testPk(9), 100, minimalAccount(codec.GameStateDiscriminator, 100)),
				}, nil)
			})

			It("routes it to the failed-accounts sink and keeps the pass alive", func() {
				summary, err := syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.Games).To(Equal(1))
				Expect(summary.Failed).To(Equal(1))

				Expect(fakeRepo.SaveFailedAccountsCallCount()).To(Equal(1))
				_, failed := fakeRepo.SaveFailedAccountsArgsForCall(0)
				Expect(failed).To(HaveLen(1))
				Expect(failed[0].Pubkey).To(Equal(testPk(9).String()))
				Expect(failed[0].Kind).To(Equal("game_state"))
				Expect(failed[0].Reason).NotTo(BeEmpty())
				Expect(failed[0].Data).To(HaveLen(108))
			})
		})

		When("an account carries an unknown discriminator", func() {
			BeforeEach(func() {
				fakeLedger.FetchProgramAccountsReturns([]solanasvc.RawAccount{
					raw(testPk(1), 100, gameAccount()),
					raw(testPk(8), 100, []byte{9, 9, 9, 9, 9, 9, 9, 9, 0, 0}),
				}, nil)
			})

			It("counts it without treating it as a failure", func() {
				summary, err := syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.Unknown).To(Equal(1))
				Expect(summary.Failed).To(Equal(0))
				Expect(fakeRepo.SaveFailedAccountsCallCount()).To(Equal(0))
			})
		})

		When("a chain value exceeds the storable range", func() {
			BeforeEach(func() {
				buf := gameAccount()
				// bank balance sits at offset 87 within the zeroed body
				binary.LittleEndian.PutUint64(buf[codec.DiscriminatorLength+87:], math.MaxUint64)
				fakeLedger.FetchProgramAccountsReturns([]solanasvc.RawAccount{
					raw(testPk(1), 100, buf),
				}, nil)
			})

			It("stores the clamped value and counts the clamp", func() {
				summary, err := syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())

				_, games := fakeRepo.UpsertGamesArgsForCall(0)
				Expect(games[0].BankBalance).To(Equal(int64(math.MaxInt64)))
				Expect(summary.Clamps).To(BeNumerically(">=", 1))
			})
		})

		When("the program scan fails", func() {
			BeforeEach(func() {
				fakeLedger.FetchProgramAccountsReturns(nil, fakeErr)
			})

			It("aborts before touching the store", func() {
				_, err := syncer.RunPass(ctx)
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.SaveRawAccountsCallCount()).To(Equal(0))
				Expect(fakeRepo.UpsertGamesCallCount()).To(Equal(0))
			})
		})

		When("the raw backup fails", func() {
			BeforeEach(func() {
				fakeLedger.FetchProgramAccountsReturns([]solanasvc.RawAccount{
					raw(testPk(1), 100, gameAccount()),
				}, nil)
				fakeRepo.SaveRawAccountsReturns(fakeErr)
			})

			It("continues the pass", func() {
				summary, err := syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.Games).To(Equal(1))
				Expect(fakeRepo.UpsertGamesCallCount()).To(Equal(1))
			})
		})

		When("the store write keeps failing", func() {
			BeforeEach(func() {
				fakeLedger.FetchProgramAccountsReturns([]solanasvc.RawAccount{
					raw(testPk(1), 100, gameAccount()),
				}, nil)
				fakeRepo.UpsertGamesReturns(fakeErr)
			})

			It("retries and then aborts the pass", func() {
				_, err := syncer.RunPass(ctx)
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.UpsertGamesCallCount()).To(Equal(3))
				Expect(fakeRepo.SaveCheckpointCallCount()).To(Equal(0))
			})
		})

		When("the store write fails once and then recovers", func() {
			BeforeEach(func() {
				fakeLedger.FetchProgramAccountsReturns([]solanasvc.RawAccount{
					raw(testPk(1), 100, gameAccount()),
				}, nil)
				fakeRepo.UpsertGamesReturnsOnCall(0, fakeErr)
			})

			It("finishes the pass", func() {
				_, err := syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.UpsertGamesCallCount()).To(Equal(2))
				Expect(fakeRepo.SaveCheckpointCallCount()).To(Equal(1))
			})
		})

		When("the failed-accounts sink write fails", func() {
			BeforeEach(func() {
				fakeLedger.FetchProgramAccountsReturns([]solanasvc.RawAccount{
					raw(testPk(9), 100, minimalAccount(codec.GameStateDiscriminator, 10)),
				}, nil)
				fakeRepo.SaveFailedAccountsReturns(fakeErr)
			})

			It("still completes the pass", func() {
				summary, err := syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.Failed).To(Equal(1))
			})
		})

		When("the checkpoint write fails", func() {
			BeforeEach(func() {
				fakeLedger.FetchProgramAccountsReturns([]solanasvc.RawAccount{
					raw(testPk(1), 100, gameAccount()),
				}, nil)
				fakeRepo.SaveCheckpointReturns(fakeErr)
			})

			It("still completes the pass", func() {
				summary, err := syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.Games).To(Equal(1))
			})
		})

		When("the scan comes back empty", func() {
			BeforeEach(func() {
				fakeLedger.FetchProgramAccountsReturns(nil, nil)
			})

			It("completes with an all-zero summary", func() {
				summary, err := syncer.RunPass(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.Fetched).To(Equal(0))
				Expect(fakeRepo.SaveRawAccountsCallCount()).To(Equal(0))
				Expect(fakeRepo.UpsertGamesCallCount()).To(Equal(1))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "admin",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = syncer.Authenticate(ctx, authMsg)
		})

		When("the operator exists and the password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetOperatorReturns(repository.Operator{
					ID:           "operator-1",
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("returns a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetOperatorCallCount()).To(Equal(1))
				_, username := fakeRepo.GetOperatorArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					UserName:   authMsg.Username,
					Subject:    "operator-1",
					Expiration: 24,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("the operator does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetOperatorReturns(repository.Operator{}, repository.ErrOperatorNotFound)
			})

			It("returns operator not found", func() {
				Expect(err).To(MatchError(core.ErrOperatorNotFound))
			})
		})

		When("the password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetOperatorReturns(repository.Operator{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("returns incorrect password", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetOperatorReturns(repository.Operator{
					ID:           "operator-1",
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("returns the signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ValidateToken", func() {
		When("the token is valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "operator-1"}, nil)
			})

			It("accepts it", func() {
				Expect(syncer.ValidateToken("a.token")).To(Succeed())
				Expect(fakeJWT.ValidateCallCount()).To(Equal(1))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("a.token"))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("rejects it", func() {
				Expect(syncer.ValidateToken("bad")).To(MatchError(fakeErr))
			})
		})
	})

	Describe("read API", func() {
		It("lists games from the store", func() {
			fakeRepo.ListGamesReturns([]repository.Game{{Pubkey: "one"}}, nil)

			games, err := syncer.ListGames(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(games).To(HaveLen(1))
		})

		It("passes store errors through with context", func() {
			fakeRepo.ListGamesReturns(nil, fakeErr)

			_, err := syncer.ListGames(ctx)
			Expect(err).To(MatchError(fakeErr))
		})

		It("gets one game by pubkey", func() {
			fakeRepo.GetGameReturns(repository.Game{Pubkey: "one"}, nil)

			game, err := syncer.GetGame(ctx, "one")
			Expect(err).NotTo(HaveOccurred())
			Expect(game.Pubkey).To(Equal("one"))

			_, pubkey := fakeRepo.GetGameArgsForCall(0)
			Expect(pubkey).To(Equal("one"))
		})

		It("surfaces the not-found error for a missing game", func() {
			fakeRepo.GetGameReturns(repository.Game{}, repository.ErrGameNotFound)

			_, err := syncer.GetGame(ctx, "missing")
			Expect(err).To(MatchError(repository.ErrGameNotFound))
		})

		It("gets players scoped to a game", func() {
			fakeRepo.GetPlayersByGameReturns([]repository.Player{{Pubkey: "p1"}, {Pubkey: "p2"}}, nil)

			players, err := syncer.GetGamePlayers(ctx, "one")
			Expect(err).NotTo(HaveOccurred())
			Expect(players).To(HaveLen(2))

			_, gamePubkey := fakeRepo.GetPlayersByGameArgsForCall(0)
			Expect(gamePubkey).To(Equal("one"))
		})

		It("gets properties scoped to a game", func() {
			fakeRepo.GetPropertiesByGameReturns([]repository.Property{{Pubkey: "pr1"}}, nil)

			properties, err := syncer.GetGameProperties(ctx, "one")
			Expect(err).NotTo(HaveOccurred())
			Expect(properties).To(HaveLen(1))
		})
	})
})
