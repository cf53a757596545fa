package payload_test

import (
	"net/url"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"circletracker/internal/http/payload"
)

var _ = Describe("TransactionsQuery", func() {
	Describe("ParseTransactionsQuery", func() {
		var (
			values url.Values
			query  payload.TransactionsQuery
			err    error
		)

		BeforeEach(func() {
			values = url.Values{}
		})

		JustBeforeEach(func() {
			query, err = payload.ParseTransactionsQuery(values)
		})

		When("all parameters are present", func() {
			BeforeEach(func() {
				values.Set("chainId", "8453")
				values.Set("type", "CIRCLE_MINT")
				values.Set("start", "2024-01-01T00:00:00Z")
				values.Set("end", "2024-02-01T00:00:00Z")
				values.Set("limit", "50")
				values.Set("offset", "100")
			})

			It("fills in every filter field", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(query.ChainID).To(Equal(int64(8453)))
				Expect(query.Type).To(Equal("CIRCLE_MINT"))
				Expect(query.StartTime).To(Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
				Expect(query.EndTime).To(Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
				Expect(query.Limit).To(Equal(50))
				Expect(query.Offset).To(Equal(100))
			})
		})

		When("no parameters are present", func() {
			It("returns an unconstrained query", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(query.ChainID).To(BeZero())
				Expect(query.Type).To(BeEmpty())
				Expect(query.StartTime.IsZero()).To(BeTrue())
				Expect(query.Limit).To(BeZero())
			})
		})

		When("chainId is not an integer", func() {
			BeforeEach(func() {
				values.Set("chainId", "base")
			})

			It("returns an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})

		When("chainId is negative", func() {
			BeforeEach(func() {
				values.Set("chainId", "-1")
			})

			It("returns an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})

		When("a timestamp is not RFC 3339", func() {
			BeforeEach(func() {
				values.Set("start", "01/02/2024")
			})

			It("returns an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Validate", func() {
		It("accepts a known transaction type", func() {
			query := payload.TransactionsQuery{Type: "CIRCLE_BURN"}
			Expect(query.Validate()).To(Succeed())
		})

		It("accepts an empty transaction type", func() {
			Expect(payload.TransactionsQuery{}.Validate()).To(Succeed())
		})

		It("rejects an unknown transaction type", func() {
			query := payload.TransactionsQuery{Type: "SOMETHING_ELSE"}
			Expect(query.Validate()).NotTo(Succeed())
		})
	})
})

var _ = Describe("BackfillRequest", func() {
	var toBlock uint64

	It("requires a chain id", func() {
		request := payload.BackfillRequest{FromBlock: 10}
		Expect(request.Validate()).NotTo(Succeed())
	})

	It("accepts an open-ended range", func() {
		request := payload.BackfillRequest{ChainID: 1, FromBlock: 10}
		Expect(request.Validate()).To(Succeed())
	})

	It("accepts a bounded range", func() {
		toBlock = 20
		request := payload.BackfillRequest{ChainID: 1, FromBlock: 10, ToBlock: &toBlock}
		Expect(request.Validate()).To(Succeed())
	})

	It("rejects an inverted range", func() {
		toBlock = 5
		request := payload.BackfillRequest{ChainID: 1, FromBlock: 10, ToBlock: &toBlock}
		Expect(request.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("ListenerRequest", func() {
	It("requires a chain id", func() {
		Expect(payload.ListenerRequest{}.Validate()).NotTo(Succeed())
		Expect(payload.ListenerRequest{ChainID: 137}.Validate()).To(Succeed())
	})
})

var _ = Describe("RecomputeStatisticsRequest", func() {
	It("accepts an empty date", func() {
		Expect(payload.RecomputeStatisticsRequest{}.Validate()).To(Succeed())
	})

	It("accepts a calendar date", func() {
		Expect(payload.RecomputeStatisticsRequest{Date: "2024-06-15"}.Validate()).To(Succeed())
	})

	It("rejects a malformed date", func() {
		Expect(payload.RecomputeStatisticsRequest{Date: "15/06/2024"}.Validate()).NotTo(Succeed())
	})
})
