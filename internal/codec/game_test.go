package codec_test

import (
	"errors"

	"github.com/WeShipHQ/panda-monopoly-sub001/internal/board"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/codec"
	"github.com/gagliardetto/solana-go"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeGameState", func() {
	var (
		address solana.PublicKey
		fixture gameFixture
		buf     []byte

		gs       *codec.GameState
		warnings []string
		err      error
	)

	BeforeEach(func() {
		address = pk(0xee)
		fixture = newGameFixture()
	})

	JustBeforeEach(func() {
		buf = fixture.encode()
		gs, warnings, err = codec.DecodeGameState(address, buf)
	})

	When("the account is well formed", func() {
		BeforeEach(func() {
			fixture.winner = ptrPk(0x02)
			fixture.tokenMint = ptrPk(0x33)
			fixture.endReason = ptrU8(1)
			fixture.startedAt = ptrI64(1_700_000_050)
			fixture.slots[1] = boardSlotFixture{owner: ptrPk(0x01), houses: 2}
			fixture.slots[39] = boardSlotFixture{mortgaged: true}
		})

		It("decodes every field in layout order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(warnings).To(BeEmpty())

			Expect(gs.Address).To(Equal(address))
			Expect(gs.GameID).To(Equal(uint64(7)))
			Expect(gs.ConfigID).To(Equal(pk(0xaa)))
			Expect(gs.Authority).To(Equal(pk(0xbb)))
			Expect(gs.Bump).To(Equal(uint8(254)))
			Expect(gs.MaxPlayers).To(Equal(uint8(4)))
			Expect(gs.CurrentPlayers).To(Equal(uint8(2)))
			Expect(gs.CurrentTurn).To(Equal(uint8(1)))
			Expect(gs.Players).To(Equal([]solana.PublicKey{pk(1), pk(2)}))
			Expect(gs.Status).To(Equal(codec.StatusInProgress))
			Expect(gs.BankBalance).To(Equal(uint64(1_000_000)))
			Expect(gs.FreeParkingPool).To(Equal(uint64(500)))
			Expect(gs.HousesRemaining).To(Equal(uint8(32)))
			Expect(gs.HotelsRemaining).To(Equal(uint8(12)))
			Expect(gs.Winner).To(Equal(ptrPk(0x02)))
			Expect(gs.EntryFee).To(Equal(uint64(100)))
			Expect(gs.PrizePool).To(Equal(uint64(200)))
			Expect(gs.TokenMint).To(Equal(ptrPk(0x33)))
			Expect(*gs.EndReason).To(Equal(uint8(1)))
			Expect(gs.CreatedAt).To(Equal(int64(1_700_000_000)))
			Expect(*gs.StartedAt).To(Equal(int64(1_700_000_050)))
			Expect(gs.EndedAt).To(BeNil())
		})

		It("backfills the board metadata into the property array", func() {
			Expect(err).NotTo(HaveOccurred())

			slot := gs.Properties[1]
			Expect(slot.Position).To(Equal(uint8(1)))
			Expect(slot.Owner).To(Equal(ptrPk(0x01)))
			Expect(slot.Houses).To(Equal(uint8(2)))
			Expect(slot.Name).To(Equal("Mediterranean Avenue"))
			Expect(slot.Price).To(Equal(uint64(60)))
			Expect(slot.ColorGroup).To(Equal(board.GroupBrown))
			Expect(slot.Rent.Base).To(Equal(uint64(2)))

			Expect(gs.Properties[39].Name).To(Equal("Boardwalk"))
			Expect(gs.Properties[39].IsMortgaged).To(BeTrue())
		})
	})

	When("the account is the minimal encoding", func() {
		BeforeEach(func() {
			fixture = gameFixture{maxPlayers: 2}
		})

		It("decodes without warnings", func() {
			Expect(buf).To(HaveLen(308))
			Expect(err).NotTo(HaveOccurred())
			Expect(warnings).To(BeEmpty())
			Expect(gs.Players).To(BeEmpty())
			Expect(gs.Status).To(Equal(codec.StatusWaitingForPlayers))
			Expect(gs.Winner).To(BeNil())
		})
	})

	When("the buffer is below the minimum size", func() {
		It("is rejected outright", func() {
			_, _, decodeErr := codec.DecodeGameState(address, buf[:295])
			Expect(decodeErr).To(MatchError(codec.ErrTooSmall))
		})
	})

	When("the buffer is truncated mid-layout", func() {
		It("always fails cleanly, never reading past the end", func() {
			full := fixture.encode()
			for n := 296; n < len(full); n++ {
				_, _, decodeErr := codec.DecodeGameState(address, full[:n])
				Expect(decodeErr).To(HaveOccurred(), "prefix of %d bytes", n)

				var insufficient *codec.InsufficientDataError
				Expect(errors.As(decodeErr, &insufficient)).To(BeTrue(), "prefix of %d bytes", n)
			}
		})
	})

	When("the players vector encodes more entries than the cap", func() {
		BeforeEach(func() {
			fixture.players = nil
			for i := 0; i < 20; i++ {
				fixture.players = append(fixture.players, pk(byte(i+1)))
			}
			fixture.maxPlayers = 16
			fixture.currentPlayers = 16
			fixture.currentTurn = 3
		})

		It("keeps the cap, consumes the rest, and stays aligned", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(gs.Players).To(HaveLen(codec.MaxGamePlayers))
			Expect(gs.Players[0]).To(Equal(pk(1)))
			Expect(gs.Players[15]).To(Equal(pk(16)))
			Expect(warnings).To(ContainElement(ContainSubstring("players vector encodes 20")))

			// fields after the vector still land on their layout offsets
			Expect(gs.Status).To(Equal(codec.StatusInProgress))
			Expect(gs.BankBalance).To(Equal(uint64(1_000_000)))
			Expect(gs.CreatedAt).To(Equal(int64(1_700_000_000)))
		})
	})

	When("the status byte is unknown", func() {
		BeforeEach(func() {
			fixture.status = 9
		})

		It("defaults to waiting with a warning", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(gs.Status).To(Equal(codec.StatusWaitingForPlayers))
			Expect(warnings).To(ContainElement(ContainSubstring("unknown game status 9")))
		})
	})

	When("player counters are out of range", func() {
		BeforeEach(func() {
			fixture.maxPlayers = 40
			fixture.currentPlayers = 30
			fixture.currentTurn = 25
		})

		It("clamps them in dependency order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(gs.MaxPlayers).To(Equal(uint8(codec.MaxGamePlayers)))
			// two players encoded, so current_players follows the list length
			Expect(gs.CurrentPlayers).To(Equal(uint8(2)))
			Expect(gs.CurrentTurn).To(Equal(uint8(1)))
			Expect(len(warnings)).To(BeNumerically(">=", 3))
		})
	})

	When("max_players is below the floor", func() {
		BeforeEach(func() {
			fixture.maxPlayers = 1
			fixture.currentPlayers = 1
			fixture.currentTurn = 0
			fixture.players = []solana.PublicKey{pk(1)}
		})

		It("clamps it up to the floor", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(gs.MaxPlayers).To(Equal(uint8(codec.MinGamePlayers)))
			Expect(warnings).To(ContainElement(ContainSubstring("below")))
		})
	})

	When("the winner option flag is malformed", func() {
		BeforeEach(func() {
			fixture.winnerFlagRaw = ptrU8(7)
		})

		It("treats the winner as absent and keeps decoding", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(gs.Winner).To(BeNil())
			Expect(warnings).To(ContainElement(ContainSubstring("option flag out of range")))
			Expect(gs.EntryFee).To(Equal(uint64(100)))
			Expect(gs.PrizePool).To(Equal(uint64(200)))
		})
	})

	When("the account carries trades", func() {
		BeforeEach(func() {
			fixture.trades = []tradeFixture{
				{
					id:               3,
					proposer:         pk(1),
					receiver:         pk(2),
					tradeType:        1,
					proposerMoney:    50,
					receiverMoney:    0,
					proposerProperty: ptrU8(6),
					status:           0,
					createdAt:        1_700_000_010,
					expiresAt:        1_700_000_910,
				},
				{
					id:       4,
					proposer: pk(2),
					receiver: pk(1),
				},
			}
		})

		It("decodes them in order with their optional properties", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(gs.Trades).To(HaveLen(2))

			first := gs.Trades[0]
			Expect(first.ID).To(Equal(uint64(3)))
			Expect(first.Proposer).To(Equal(pk(1)))
			Expect(first.Receiver).To(Equal(pk(2)))
			Expect(first.ProposerMoney).To(Equal(uint64(50)))
			Expect(*first.ProposerProperty).To(Equal(uint8(6)))
			Expect(first.ReceiverProperty).To(BeNil())
			Expect(first.ExpiresAt).To(Equal(int64(1_700_000_910)))

			Expect(gs.Trades[1].ID).To(Equal(uint64(4)))
		})
	})
})
