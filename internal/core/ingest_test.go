package core_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"circletracker/internal/chains"
	"circletracker/internal/core"
	"circletracker/internal/core/fake"
	"circletracker/internal/ethereum"
	"circletracker/internal/repository"
)

var _ = Describe("Ingestion", func() {
	var (
		fakeRepo    *fake.Repository
		fakeJWT     *fake.JWTIssuer
		fakeScanner *fake.ChainScanner
		registry    *chains.Registry
		ctx         context.Context

		tracker *core.Tracker

		fakeErr error

		zero  common.Address
		alice common.Address
		bob   common.Address
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
			core.Config{PollInterval: time.Hour})

		zero = common.Address{}
		alice = common.HexToAddress("0x1111111111111111111111111111111111111111")
		bob = common.HexToAddress("0x2222222222222222222222222222222222222222")
	})

	Describe("RunBackfill", func() {
		var (
			summary core.BackfillSummary
			err     error

			transfers []ethereum.TransferLog
		)

		BeforeEach(func() {
			transfers = []ethereum.TransferLog{
				{
					TransactionHash: common.HexToHash("0xAA01"),
					BlockNumber:     100,
					LogIndex:        0,
					From:            zero,
					To:              alice,
					RawAmount:       big.NewInt(5_000_000),
					BlockTimestamp:  1700000000,
				},
				{
					TransactionHash: common.HexToHash("0xBB02"),
					BlockNumber:     101,
					LogIndex:        0,
					From:            bob,
					To:              zero,
					RawAmount:       big.NewInt(2_500_000),
					BlockTimestamp:  1700000012,
				},
				{
					TransactionHash: common.HexToHash("0xCC03"),
					BlockNumber:     102,
					LogIndex:        1,
					From:            alice,
					To:              bob,
					RawAmount:       big.NewInt(1_000_000),
					BlockTimestamp:  1700000024,
				},
			}
			fakeScanner.FetchTransferLogsReturns(transfers, nil)
			fakeRepo.InsertIfAbsentReturns(true, nil)
		})

		JustBeforeEach(func() {
			summary, err = tracker.RunBackfill(ctx, 1, 100, 102)
		})

		When("the range holds a mint, a burn and a regular transfer", func() {
			It("stores the mint and the burn and drops the rest", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeScanner.FetchTransferLogsCallCount()).To(Equal(1))
				_, fromBlock, toBlock := fakeScanner.FetchTransferLogsArgsForCall(0)
				Expect(fromBlock).To(Equal(uint64(100)))
				Expect(toBlock).To(Equal(uint64(102)))

				Expect(summary.Attempted).To(Equal(2))
				Expect(summary.Inserted).To(Equal(2))
				Expect(summary.SkippedExisting).To(BeZero())
				Expect(summary.Classified).To(Equal(map[string]int{
					"CIRCLE_MINT": 1,
					"CIRCLE_BURN": 1,
					"OTHER":       1,
				}))

				Expect(fakeRepo.InsertIfAbsentCallCount()).To(Equal(2))

				_, mint := fakeRepo.InsertIfAbsentArgsForCall(0)
				Expect(mint.TxHash).To(Equal(transfers[0].TransactionHash.Hex()))
				Expect(mint.ChainID).To(Equal(int64(1)))
				Expect(mint.ChainName).To(Equal("Ethereum"))
				Expect(mint.Type).To(Equal("CIRCLE_MINT"))
				Expect(mint.Amount.String()).To(Equal("5"))
				Expect(mint.Timestamp).To(Equal(time.Unix(1700000000, 0).UTC()))
				Expect(mint.Status).To(Equal("CONFIRMED"))

				_, burn := fakeRepo.InsertIfAbsentArgsForCall(1)
				Expect(burn.Type).To(Equal("CIRCLE_BURN"))
				Expect(burn.Amount.String()).To(Equal("2.5"))
				Expect(burn.FromAddress).To(Equal(bob.Hex()))

				Expect(summary.InsertedRecords).To(HaveLen(2))
				Expect(summary.InsertedRecords[0].Type).To(Equal("CIRCLE_MINT"))
			})

			It("records an audit event per stored transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.SaveEventsCallCount()).To(Equal(2))

				_, events := fakeRepo.SaveEventsArgsForCall(0)
				Expect(events).To(HaveLen(1))
				Expect(events[0].TxHash).To(Equal(transfers[0].TransactionHash.Hex()))
				Expect(events[0].EventName).To(Equal("Transfer"))
				Expect(events[0].ChainID).To(Equal(int64(1)))
			})
		})

		When("the same range is ingested twice", func() {
			BeforeEach(func() {
				fakeRepo.InsertIfAbsentReturns(false, nil)
			})

			It("skips every existing transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.Attempted).To(Equal(2))
				Expect(summary.Inserted).To(BeZero())
				Expect(summary.SkippedExisting).To(Equal(2))
				Expect(fakeRepo.SaveEventsCallCount()).To(BeZero())
			})
		})

		When("the store rejects an insert", func() {
			BeforeEach(func() {
				fakeRepo.InsertIfAbsentReturns(false, fakeErr)
			})

			It("fails closed", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.InsertIfAbsentCallCount()).To(Equal(1))
			})
		})

		When("saving the audit event fails", func() {
			BeforeEach(func() {
				fakeRepo.SaveEventsReturns(fakeErr)
			})

			It("keeps the transaction and carries on", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.Inserted).To(Equal(2))
			})
		})

		When("the fetch fails", func() {
			BeforeEach(func() {
				fakeScanner.FetchTransferLogsReturns(nil, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.InsertIfAbsentCallCount()).To(BeZero())
			})
		})
	})

	Describe("RunBackfill range resolution", func() {
		When("the chain is not supported", func() {
			It("rejects the request", func() {
				_, err := tracker.RunBackfill(ctx, 999, 0, 10)
				Expect(err).To(MatchError(chains.ErrUnsupportedChain))
			})
		})

		When("no scanner exists for the chain", func() {
			It("rejects the request", func() {
				_, err := tracker.RunBackfill(ctx, 137, 0, 10)
				Expect(err).To(MatchError(core.ErrUnknownScanner))
			})
		})

		When("toBlock is the latest-block sentinel", func() {
			BeforeEach(func() {
				fakeScanner.HeadBlockReturns(30, nil)
				fakeScanner.FetchTransferLogsReturns(nil, nil)
			})

			It("resolves the current head first", func() {
				summary, err := tracker.RunBackfill(ctx, 1, 10, ethereum.LatestBlock)
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.ToBlock).To(Equal(uint64(30)))

				_, fromBlock, toBlock := fakeScanner.FetchTransferLogsArgsForCall(0)
				Expect(fromBlock).To(Equal(uint64(10)))
				Expect(toBlock).To(Equal(uint64(30)))
			})
		})
	})

	Describe("Listener lifecycle", func() {
		BeforeEach(func() {
			fakeRepo.GetWatermarkReturns(50, nil)
		})

		AfterEach(func() {
			tracker.Shutdown()
		})

		It("starts and stops the poll loop of a chain", func() {
			Expect(tracker.StartListener(1)).To(Succeed())
			Expect(tracker.StartListener(1)).To(MatchError(core.ErrListenerRunning))

			Expect(tracker.StopListener(1)).To(Succeed())
			Eventually(func() error {
				return tracker.StopListener(1)
			}).Should(MatchError(core.ErrListenerNotRunning))
		})

		It("rejects chains without a scanner", func() {
			Expect(tracker.StartListener(137)).To(MatchError(core.ErrUnknownScanner))
			Expect(tracker.StartListener(999)).To(MatchError(chains.ErrUnsupportedChain))
		})

		It("rejects stopping a listener that never started", func() {
			Expect(tracker.StopListener(1)).To(MatchError(core.ErrListenerNotRunning))
		})

		When("the watermark cannot be read because the store is down", func() {
			BeforeEach(func() {
				fakeRepo.GetWatermarkReturns(0, fmt.Errorf("%w: connection refused", repository.ErrStoreUnavailable))
				fakeScanner.HeadBlockReturns(200, nil)
			})

			It("stops the listener without touching the stored watermark", func() {
				Expect(tracker.StartListener(1)).To(Succeed())

				Eventually(func() error {
					return tracker.StopListener(1)
				}).Should(MatchError(core.ErrListenerNotRunning))

				Expect(fakeScanner.HeadBlockCallCount()).To(BeZero())
				Expect(fakeRepo.SaveWatermarkCallCount()).To(BeZero())
			})
		})

		When("the chain has no watermark yet", func() {
			BeforeEach(func() {
				fakeRepo.GetWatermarkReturns(0, repository.ErrWatermarkNotFound)
				fakeScanner.HeadBlockReturns(200, nil)
			})

			It("starts from the current head and persists it", func() {
				Expect(tracker.StartListener(1)).To(Succeed())

				Eventually(fakeRepo.SaveWatermarkCallCount).Should(Equal(1))
				_, chainID, blockNumber := fakeRepo.SaveWatermarkArgsForCall(0)
				Expect(chainID).To(Equal(int64(1)))
				Expect(blockNumber).To(Equal(uint64(200)))

				Expect(tracker.StopListener(1)).To(Succeed())
			})
		})
	})
})
