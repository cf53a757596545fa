package core_test

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"circletracker/internal/chains"
	"circletracker/internal/core"
	"circletracker/internal/core/fake"
	"circletracker/internal/repository"
	tokenIssuer "circletracker/pkg/jwt"
)

var _ = Describe("Tracker", func() {
	var (
		fakeRepo    *fake.Repository
		fakeJWT     *fake.JWTIssuer
		fakeScanner *fake.ChainScanner
		registry    *chains.Registry
		ctx         context.Context

		tracker *core.Tracker

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeScanner = new(fake.ChainScanner)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		var err error
		registry, err = chains.NewRegistry(nil)
		Expect(err).NotTo(HaveOccurred())

		tracker = core.NewTracker(
			zap.NewNop().Sugar(),
			fakeRepo,
			registry,
			map[int64]core.ChainScanner{1: fakeScanner},
			fakeJWT,
			core.Config{
				PollInterval:    time.Hour,
				DefaultPageSize: 20,
				MaxPageSize:     100,
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
			genToken = jwt.New(jwt.SigningMethodHS256)

			authMsg = core.AuthMessage{
				Username: "alice",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = tracker.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{
					ID:           "user-1",
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					Role:         "admin",
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token carrying the role", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				tokenInfo := fakeJWT.GenerateArgsForCall(0)
				Expect(tokenInfo).To(Equal(tokenIssuer.TokenInfo{
					UserName:   "alice",
					Subject:    "user-1",
					Role:       "admin",
					Expiration: 24,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("AuthorizeAdmin", func() {
		var err error

		JustBeforeEach(func() {
			err = tracker.AuthorizeAdmin("some.token")
		})

		When("the token carries the admin role", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"role": "admin"}, nil)
			})

			It("should authorize the caller", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeJWT.ValidateCallCount()).To(Equal(1))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("some.token"))
			})
		})

		When("the token carries another role", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"role": "user"}, nil)
			})

			It("should reject the caller", func() {
				Expect(err).To(MatchError(core.ErrNotAuthorized))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should reject the caller", func() {
				Expect(err).To(MatchError(core.ErrNotAuthorized))
			})
		})
	})

	Describe("GetTransactions", func() {
		var (
			filter  core.QueryFilter
			records []core.TransactionRecord
			err     error
		)

		BeforeEach(func() {
			filter = core.QueryFilter{ChainID: 1, Type: "CIRCLE_MINT"}
		})

		JustBeforeEach(func() {
			records, err = tracker.GetTransactions(ctx, filter)
		})

		When("the store returns rows", func() {
			BeforeEach(func() {
				fakeRepo.QueryTransactionsReturns([]repository.Transaction{
					{TxHash: "0xaa", ChainID: 1, Type: "CIRCLE_MINT", Amount: decimal.RequireFromString("5")},
					{TxHash: "0xbb", ChainID: 1, Type: "CIRCLE_MINT", Amount: decimal.RequireFromString("2.5")},
				}, nil)
			})

			It("should map rows to records with the default page size", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].TxHash).To(Equal("0xaa"))
				Expect(records[0].Amount.String()).To(Equal("5"))

				Expect(fakeRepo.QueryTransactionsCallCount()).To(Equal(1))
				_, repoFilter := fakeRepo.QueryTransactionsArgsForCall(0)
				Expect(repoFilter.ChainID).To(Equal(int64(1)))
				Expect(repoFilter.Type).To(Equal("CIRCLE_MINT"))
				Expect(repoFilter.Limit).To(Equal(20))
			})
		})

		When("the requested page exceeds the maximum", func() {
			BeforeEach(func() {
				filter.Limit = 5000
			})

			It("should clamp the limit", func() {
				Expect(err).NotTo(HaveOccurred())
				_, repoFilter := fakeRepo.QueryTransactionsArgsForCall(0)
				Expect(repoFilter.Limit).To(Equal(100))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.QueryTransactionsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetTransactionByHash", func() {
		When("the transaction exists", func() {
			BeforeEach(func() {
				fakeRepo.FindByHashReturns(repository.Transaction{TxHash: "0xaa", ChainID: 1}, nil)
			})

			It("should return the record", func() {
				record, err := tracker.GetTransactionByHash(ctx, "0xaa")
				Expect(err).NotTo(HaveOccurred())
				Expect(record.TxHash).To(Equal("0xaa"))

				_, txHash := fakeRepo.FindByHashArgsForCall(0)
				Expect(txHash).To(Equal("0xaa"))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.FindByHashReturns(repository.Transaction{}, repository.ErrTransactionNotFound)
			})

			It("should return the error", func() {
				_, err := tracker.GetTransactionByHash(ctx, "0xaa")
				Expect(err).To(MatchError(repository.ErrTransactionNotFound))
			})
		})
	})

	Describe("GetSummary", func() {
		var (
			summary core.Summary
			err     error
		)

		JustBeforeEach(func() {
			summary, err = tracker.GetSummary(ctx, core.QueryFilter{})
		})

		When("the store returns per-type totals", func() {
			BeforeEach(func() {
				fakeRepo.SummarizeByTypeReturns([]repository.TypeTotal{
					{Type: "CIRCLE_MINT", Count: 1, TotalAmount: decimal.RequireFromString("5")},
					{Type: "CIRCLE_BURN", Count: 1, TotalAmount: decimal.RequireFromString("2.5")},
					{Type: "CCTP_BURN", Count: 2, TotalAmount: decimal.RequireFromString("7")},
					{Type: "CCTP_MINT", Count: 1, TotalAmount: decimal.RequireFromString("3")},
				}, nil)
			})

			It("should fold the totals into the summary buckets", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.TotalCount).To(Equal(int64(5)))
				Expect(summary.MintAmount.String()).To(Equal("5"))
				Expect(summary.BurnAmount.String()).To(Equal("2.5"))
				Expect(summary.CCTPAmount.String()).To(Equal("10"))
			})
		})

		When("the filtered set is empty", func() {
			BeforeEach(func() {
				fakeRepo.SummarizeByTypeReturns(nil, nil)
			})

			It("should return a zero summary", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.TotalCount).To(BeZero())
				Expect(summary.MintAmount.IsZero()).To(BeTrue())
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.SummarizeByTypeReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SupportedChains", func() {
		It("lists the registry chains in id order", func() {
			infos := tracker.SupportedChains()
			Expect(infos).To(HaveLen(6))
			Expect(infos[0]).To(Equal(core.ChainInfo{ID: 1, Name: "Ethereum"}))
			Expect(infos[3]).To(Equal(core.ChainInfo{ID: 8453, Name: "Base"}))
		})
	})

	Describe("LatestBlockNumber", func() {
		When("a scanner exists for the chain", func() {
			BeforeEach(func() {
				fakeScanner.HeadBlockReturns(42, nil)
			})

			It("returns the chain head", func() {
				head, err := tracker.LatestBlockNumber(ctx, 1)
				Expect(err).NotTo(HaveOccurred())
				Expect(head).To(Equal(uint64(42)))
			})
		})

		When("no scanner exists for the chain", func() {
			It("returns an unknown scanner error", func() {
				_, err := tracker.LatestBlockNumber(ctx, 137)
				Expect(err).To(MatchError(core.ErrUnknownScanner))
			})
		})

		When("the head query fails", func() {
			BeforeEach(func() {
				fakeScanner.HeadBlockReturns(0, fakeErr)
			})

			It("returns the error", func() {
				_, err := tracker.LatestBlockNumber(ctx, 1)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetStatistics", func() {
		BeforeEach(func() {
			fakeRepo.QueryStatisticsReturns([]repository.Statistic{
				{
					Date:        "2024-06-15",
					ChainID:     1,
					Type:        "CIRCLE_MINT",
					Count:       3,
					TotalAmount: decimal.RequireFromString("12"),
					AvgAmount:   decimal.RequireFromString("4"),
				},
			}, nil)
		})

		It("maps statistics to records and forwards the filter", func() {
			records, err := tracker.GetStatistics(ctx, "2024-06-15", 1, "CIRCLE_MINT")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Count).To(Equal(int64(3)))
			Expect(records[0].TotalAmount.String()).To(Equal("12"))

			_, filter := fakeRepo.QueryStatisticsArgsForCall(0)
			Expect(filter.Date).To(Equal("2024-06-15"))
			Expect(filter.ChainID).To(Equal(int64(1)))
			Expect(filter.Type).To(Equal("CIRCLE_MINT"))
		})
	})

	Describe("RecomputeStatistics", func() {
		When("a date is given", func() {
			It("recomputes that day", func() {
				Expect(tracker.RecomputeStatistics(ctx, "2024-06-15")).To(Succeed())

				Expect(fakeRepo.RecomputeStatisticsCallCount()).To(Equal(1))
				_, date := fakeRepo.RecomputeStatisticsArgsForCall(0)
				Expect(date).To(Equal("2024-06-15"))
			})
		})

		When("no date is given", func() {
			It("defaults to today", func() {
				Expect(tracker.RecomputeStatistics(ctx, "")).To(Succeed())

				_, date := fakeRepo.RecomputeStatisticsArgsForCall(0)
				Expect(date).To(Equal(time.Now().UTC().Format("2006-01-02")))
			})
		})

		When("the rollup fails", func() {
			BeforeEach(func() {
				fakeRepo.RecomputeStatisticsReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(tracker.RecomputeStatistics(ctx, "2024-06-15")).To(MatchError(fakeErr))
			})
		})
	})
})
