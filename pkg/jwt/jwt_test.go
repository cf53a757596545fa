package jwt_test

import (
	"time"

	gojwt "github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"circletracker/pkg/jwt"
)

var _ = Describe("JWTService", func() {
	var (
		service   *jwt.JWTService
		tokenInfo jwt.TokenInfo
	)

	BeforeEach(func() {
		service = jwt.NewJWTService([]byte("test-secret"))
		tokenInfo = jwt.TokenInfo{
			UserName:   "alice",
			Subject:    "user-1",
			Role:       "admin",
			Expiration: 24,
		}
	})

	AfterEach(func() {
		jwt.TimeNow = time.Now
	})

	Describe("Generate and Validate", func() {
		It("round-trips the claims", func() {
			token := service.Generate(tokenInfo)
			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal("user-1"))
			Expect(claims["username"]).To(Equal("alice"))
			Expect(claims["role"]).To(Equal("admin"))
		})
	})

	Describe("Validate", func() {
		When("the token is signed with a different secret", func() {
			It("returns a validation error", func() {
				other := jwt.NewJWTService([]byte("other-secret"))
				signed, err := other.Sign(other.Generate(tokenInfo))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})

		When("the token is garbage", func() {
			It("returns a validation error", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})

		When("the token has expired", func() {
			It("returns an expiry error", func() {
				jwt.TimeNow = func() time.Time {
					return time.Now().Add(-48 * time.Hour)
				}
				signed, err := service.Sign(service.Generate(tokenInfo))
				Expect(err).NotTo(HaveOccurred())

				jwt.TimeNow = time.Now
				_, err = service.Validate(signed)
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})

		When("the signing method is not HMAC", func() {
			It("rejects the token", func() {
				unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"sub": "user-1"})
				raw, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(raw)
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})
	})
})
