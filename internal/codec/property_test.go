package codec_test

import (
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/board"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/codec"
	"github.com/gagliardetto/solana-go"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodePropertyState", func() {
	var (
		address solana.PublicKey
		fixture propertyFixture

		prop     *codec.PropertyState
		warnings []string
		err      error
	)

	BeforeEach(func() {
		address = pk(0xcc)
		fixture = newPropertyFixture()
	})

	JustBeforeEach(func() {
		prop, warnings, err = codec.DecodePropertyState(address, fixture.encode())
	})

	When("the account is well formed", func() {
		BeforeEach(func() {
			fixture.owner = ptrPk(0x11)
			fixture.houses = 3
		})

		It("decodes every field in layout order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(warnings).To(BeEmpty())

			Expect(prop.Address).To(Equal(address))
			Expect(prop.Position).To(Equal(uint8(1)))
			Expect(prop.Game).To(Equal(pk(0x22)))
			Expect(prop.Owner).To(Equal(ptrPk(0x11)))
			Expect(prop.Price).To(Equal(uint64(60)))
			Expect(prop.ColorGroup).To(Equal(board.GroupBrown))
			Expect(prop.PropertyType).To(Equal(board.TypeProperty))
			Expect(prop.Houses).To(Equal(uint8(3)))
			Expect(prop.Rent.Base).To(Equal(uint64(2)))
			Expect(prop.Rent.WithColorGroup).To(Equal(uint64(4)))
			Expect(prop.Rent.WithHouses).To(Equal([4]uint64{10, 30, 90, 160}))
			Expect(prop.Rent.WithHotel).To(Equal(uint64(250)))
			Expect(prop.HouseCost).To(Equal(uint64(50)))
			Expect(prop.MortgageValue).To(Equal(uint64(30)))
			Expect(prop.LastRentPaid).To(Equal(int64(1_700_000_200)))
			Expect(prop.IsInitialized).To(BeTrue())
		})
	})

	When("the static fields are zero on chain", func() {
		BeforeEach(func() {
			fixture.price = 0
			fixture.rents = [7]uint64{}
			fixture.houseCost = 0
			fixture.mortgage = 0
		})

		It("backfills them from the board table", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(prop.Price).To(Equal(uint64(60)))
			Expect(prop.Rent.Base).To(Equal(uint64(2)))
			Expect(prop.Rent.WithHotel).To(Equal(uint64(250)))
			Expect(prop.HouseCost).To(Equal(uint64(50)))
			Expect(prop.MortgageValue).To(Equal(uint64(30)))
		})
	})

	When("the houses count exceeds the cap", func() {
		BeforeEach(func() {
			fixture.houses = 9
		})

		It("clamps with a warning", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(prop.Houses).To(Equal(uint8(4)))
			Expect(warnings).To(ContainElement(ContainSubstring("houses 9")))
		})
	})

	When("the position is beyond the board", func() {
		BeforeEach(func() {
			fixture.position = 77
		})

		It("clamps to the last space", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(prop.Position).To(Equal(uint8(39)))
			Expect(warnings).To(ContainElement(ContainSubstring("property position 77")))
		})
	})

	When("the color and type bytes are out of range", func() {
		BeforeEach(func() {
			fixture.colorByte = 200
			fixture.typeByte = 200
		})

		It("falls back to the board metadata for the space", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(prop.ColorGroup).To(Equal(board.GroupBrown))
			Expect(prop.PropertyType).To(Equal(board.TypeProperty))
		})
	})

	When("the buffer is truncated", func() {
		It("fails cleanly", func() {
			full := fixture.encode()
			_, _, decodeErr := codec.DecodePropertyState(address, full[:40])
			Expect(decodeErr).To(HaveOccurred())
		})
	})
})

var _ = Describe("DecodePlatformConfig", func() {
	var (
		address solana.PublicKey
		fixture platformFixture
	)

	BeforeEach(func() {
		address = pk(0xab)
		fixture = newPlatformFixture()
	})

	It("decodes every field in layout order", func() {
		cfg, warnings, err := codec.DecodePlatformConfig(address, fixture.encode())
		Expect(err).NotTo(HaveOccurred())
		Expect(warnings).To(BeEmpty())

		Expect(cfg.Address).To(Equal(address))
		Expect(cfg.ID).To(Equal(pk(0x31)))
		Expect(cfg.Authority).To(Equal(pk(0x32)))
		Expect(cfg.FeeBasisPoints).To(Equal(uint16(250)))
		Expect(cfg.FeeVault).To(Equal(pk(0x33)))
		Expect(cfg.TotalGamesCreated).To(Equal(uint64(42)))
		Expect(cfg.NextGameID).To(Equal(uint64(43)))
		Expect(cfg.Bump).To(Equal(uint8(255)))
	})

	It("fails on a truncated buffer", func() {
		full := fixture.encode()
		_, _, err := codec.DecodePlatformConfig(address, full[:50])
		Expect(err).To(HaveOccurred())
	})
})
