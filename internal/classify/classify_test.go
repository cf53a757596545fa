package classify_test

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"circletracker/internal/classify"
)

var _ = Describe("Classify", func() {
	var (
		zero  common.Address
		alice common.Address
		bob   common.Address
	)

	BeforeEach(func() {
		zero = common.Address{}
		alice = common.HexToAddress("0x1111111111111111111111111111111111111111")
		bob = common.HexToAddress("0x2222222222222222222222222222222222222222")
	})

	When("the sender is the zero address", func() {
		It("classifies the transfer as a mint", func() {
			Expect(classify.Classify(zero, alice)).To(Equal(classify.CircleMint))
		})
	})

	When("the recipient is the zero address", func() {
		It("classifies the transfer as a burn", func() {
			Expect(classify.Classify(alice, zero)).To(Equal(classify.CircleBurn))
		})
	})

	When("both sides are the zero address", func() {
		It("prefers the mint classification", func() {
			Expect(classify.Classify(zero, zero)).To(Equal(classify.CircleMint))
		})
	})

	When("neither side is the zero address", func() {
		It("classifies the transfer as other", func() {
			Expect(classify.Classify(alice, bob)).To(Equal(classify.Other))
		})
	})
})

var _ = Describe("NormalizeAmount", func() {
	It("converts one base unit to the smallest USDC fraction", func() {
		amount := classify.NormalizeAmount(big.NewInt(1))
		Expect(amount.String()).To(Equal("0.000001"))
	})

	It("converts whole USDC amounts", func() {
		amount := classify.NormalizeAmount(big.NewInt(1_000_000))
		Expect(amount.String()).To(Equal("1"))
	})

	It("keeps every digit of large amounts", func() {
		raw, ok := new(big.Int).SetString("123456789012345678", 10)
		Expect(ok).To(BeTrue())

		amount := classify.NormalizeAmount(raw)
		Expect(amount.String()).To(Equal("123456789012.345678"))
	})

	It("handles amounts beyond the float64 mantissa without loss", func() {
		raw, ok := new(big.Int).SetString("99999999999999999999999999", 10)
		Expect(ok).To(BeTrue())

		amount := classify.NormalizeAmount(raw)
		Expect(amount.String()).To(Equal("99999999999999999999.999999"))
	})

	It("treats a nil amount as zero", func() {
		Expect(classify.NormalizeAmount(nil).IsZero()).To(BeTrue())
	})
})
