package payload_test

import (
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"circletracker/internal/http/payload"
)

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	BeforeEach(func() {
		decoder = payload.Decoder{}
	})

	When("the payload is valid JSON", func() {
		It("decodes and validates the payload", func() {
			req := httptest.NewRequest("POST", "/tracker/listener", strings.NewReader(`{"chainId":1}`))

			var listener payload.ListenerRequest
			Expect(decoder.DecodeJSONPayload(req, &listener)).To(Succeed())
			Expect(listener.ChainID).To(Equal(int64(1)))
		})
	})

	When("the payload has unknown fields", func() {
		It("rejects the payload", func() {
			req := httptest.NewRequest("POST", "/tracker/listener", strings.NewReader(`{"chainId":1,"bogus":true}`))

			var listener payload.ListenerRequest
			Expect(decoder.DecodeJSONPayload(req, &listener)).NotTo(Succeed())
		})
	})

	When("the payload fails validation", func() {
		It("returns the validation error", func() {
			req := httptest.NewRequest("POST", "/tracker/listener", strings.NewReader(`{"chainId":0}`))

			var listener payload.ListenerRequest
			err := decoder.DecodeJSONPayload(req, &listener)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("validating payload"))
		})
	})

	When("the body is not JSON", func() {
		It("returns a decoding error", func() {
			req := httptest.NewRequest("POST", "/tracker/listener", strings.NewReader(`not-json`))

			var listener payload.ListenerRequest
			err := decoder.DecodeJSONPayload(req, &listener)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("decoding json payload"))
		})
	})
})
