package codec_test

import (
	"errors"

	"github.com/WeShipHQ/panda-monopoly-sub001/internal/codec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reader", func() {
	Describe("scalar reads", func() {
		It("reads little-endian values in order", func() {
			w := &bufWriter{}
			w.u8(0x0a)
			w.u16(0x0102)
			w.u32(0x01020304)
			w.u64(0x0102030405060708)
			w.i64(-5)
			r := codec.NewReader(w.b)

			v8, err := r.U8()
			Expect(err).NotTo(HaveOccurred())
			Expect(v8).To(Equal(uint8(0x0a)))

			v16, err := r.U16()
			Expect(err).NotTo(HaveOccurred())
			Expect(v16).To(Equal(uint16(0x0102)))

			v32, err := r.U32()
			Expect(err).NotTo(HaveOccurred())
			Expect(v32).To(Equal(uint32(0x01020304)))

			v64, err := r.U64()
			Expect(err).NotTo(HaveOccurred())
			Expect(v64).To(Equal(uint64(0x0102030405060708)))

			i64, err := r.I64()
			Expect(err).NotTo(HaveOccurred())
			Expect(i64).To(Equal(int64(-5)))

			Expect(r.Remaining()).To(Equal(0))
			Expect(r.Offset()).To(Equal(len(w.b)))
		})

		It("tracks offset and remaining as the cursor advances", func() {
			r := codec.NewReader(make([]byte, 10))
			_, err := r.U32()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Offset()).To(Equal(4))
			Expect(r.Remaining()).To(Equal(6))
		})
	})

	Describe("bounds checking", func() {
		It("fails a read past the end without advancing into the buffer", func() {
			r := codec.NewReader([]byte{1, 2, 3})
			_, err := r.U64()

			var insufficient *codec.InsufficientDataError
			Expect(errors.As(err, &insufficient)).To(BeTrue())
			Expect(insufficient.Needed).To(Equal(8))
			Expect(insufficient.Remaining).To(Equal(3))
		})

		It("fails a pubkey read on a short buffer", func() {
			r := codec.NewReader(make([]byte, 31))
			_, err := r.Pubkey()

			var insufficient *codec.InsufficientDataError
			Expect(errors.As(err, &insufficient)).To(BeTrue())
			Expect(insufficient.Needed).To(Equal(32))
			Expect(insufficient.Remaining).To(Equal(31))
		})

		It("fails on an empty buffer", func() {
			r := codec.NewReader(nil)
			_, err := r.U8()
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("options", func() {
		It("reads an absent option", func() {
			r := codec.NewReader([]byte{0})
			v, err := r.OptionI64()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeNil())
			Expect(r.Warnings()).To(BeEmpty())
		})

		It("reads a present option with its payload", func() {
			w := &bufWriter{}
			w.optI64(ptrI64(77))
			r := codec.NewReader(w.b)

			v, err := r.OptionI64()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).NotTo(BeNil())
			Expect(*v).To(Equal(int64(77)))
		})

		It("treats an out-of-range flag as absent with a warning", func() {
			r := codec.NewReader([]byte{7, 0xff, 0xff})
			v, err := r.OptionU8()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeNil())
			Expect(r.Warnings()).To(HaveLen(1))
			Expect(r.Warnings()[0]).To(ContainSubstring("option flag out of range"))
			// the payload bytes were not consumed
			Expect(r.Remaining()).To(Equal(2))
		})

		It("fails when the flag says present but the payload is missing", func() {
			r := codec.NewReader([]byte{1})
			_, err := r.OptionPubkey()
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("vectors", func() {
		It("reads the u32 length prefix", func() {
			w := &bufWriter{}
			w.u32(12)
			r := codec.NewReader(w.b)

			n, err := r.VecLen()
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(12))
		})
	})
})

var _ = Describe("Discriminate", func() {
	It("classifies every known account tag", func() {
		Expect(codec.Discriminate(codec.GameStateDiscriminator)).To(Equal(codec.KindGameState))
		Expect(codec.Discriminate(codec.PlayerStateDiscriminator)).To(Equal(codec.KindPlayerState))
		Expect(codec.Discriminate(codec.PropertyStateDiscriminator)).To(Equal(codec.KindPropertyState))
		Expect(codec.Discriminate(codec.PlatformConfigDiscriminator)).To(Equal(codec.KindPlatformConfig))
	})

	It("returns unknown for an unrecognized tag", func() {
		Expect(codec.Discriminate([]byte{1, 2, 3, 4, 5, 6, 7, 8})).To(Equal(codec.KindUnknown))
	})

	It("returns unknown for a buffer shorter than the tag", func() {
		Expect(codec.Discriminate([]byte{1, 2, 3})).To(Equal(codec.KindUnknown))
		Expect(codec.Discriminate(nil)).To(Equal(codec.KindUnknown))
	})

	It("ignores payload bytes beyond the tag", func() {
		buf := append(append([]byte{}, codec.GameStateDiscriminator...), 0xde, 0xad)
		Expect(codec.Discriminate(buf)).To(Equal(codec.KindGameState))
	})
})

var _ = Describe("DiscriminatorFor", func() {
	It("round-trips with Discriminate", func() {
		kinds := []codec.AccountKind{
			codec.KindGameState,
			codec.KindPlayerState,
			codec.KindPropertyState,
			codec.KindPlatformConfig,
		}
		for _, kind := range kinds {
			Expect(codec.Discriminate(codec.DiscriminatorFor(kind))).To(Equal(kind))
		}
	})

	It("returns nil for unknown", func() {
		Expect(codec.DiscriminatorFor(codec.KindUnknown)).To(BeNil())
	})
})
