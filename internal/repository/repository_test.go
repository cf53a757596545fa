package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"circletracker/internal/db"
	"circletracker/internal/repository"
)

var _ = Describe("TrackerRepository", func() {
	var (
		repo   *repository.TrackerRepository
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		ctx    context.Context
		err    error
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		repo = repository.NewTrackerRepository(&db.PostgresDB{DB: gormDB})
		ctx = context.Background()
	})

	AfterEach(func() {
		Expect(mock.ExpectationsWereMet()).To(Succeed())
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("InsertIfAbsent", func() {
		var transaction repository.Transaction

		BeforeEach(func() {
			transaction = repository.Transaction{
				TxHash:      "0xaa",
				ChainID:     1,
				ChainName:   "Ethereum",
				BlockNumber: 100,
				Timestamp:   time.Unix(1700000000, 0).UTC(),
				FromAddress: "0x0000000000000000000000000000000000000000",
				ToAddress:   "0x1111111111111111111111111111111111111111",
				Amount:      decimal.RequireFromString("5"),
				Type:        "CIRCLE_MINT",
				Status:      "CONFIRMED",
			}
		})

		When("the transaction hash is new", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO "transactions" .*ON CONFLICT \("tx_hash"\) DO NOTHING`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("inserts the row and reports it", func() {
				inserted, err := repo.InsertIfAbsent(ctx, transaction)
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(BeTrue())
			})
		})

		When("the transaction hash already exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO "transactions" .*ON CONFLICT \("tx_hash"\) DO NOTHING`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectCommit()
			})

			It("reports the duplicate without an error", func() {
				inserted, err := repo.InsertIfAbsent(ctx, transaction)
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(BeFalse())
			})
		})

		When("the store is down", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO "transactions"`).
					WillReturnError(errors.New("connection refused"))
				mock.ExpectRollback()
			})

			It("returns a store unavailable error", func() {
				_, err := repo.InsertIfAbsent(ctx, transaction)
				Expect(err).To(MatchError(repository.ErrStoreUnavailable))
			})
		})
	})

	Describe("SaveEvents", func() {
		It("does nothing for an empty batch", func() {
			Expect(repo.SaveEvents(ctx, nil)).To(Succeed())
		})

		When("the batch holds an event", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO "events" .*ON CONFLICT \("tx_hash","log_index"\) DO NOTHING`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("persists the event", func() {
				err := repo.SaveEvents(ctx, []repository.Event{{
					TxHash:      "0xaa",
					LogIndex:    0,
					ChainID:     1,
					EventName:   "Transfer",
					BlockNumber: 100,
					Timestamp:   time.Unix(1700000000, 0).UTC(),
				}})
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("FindByHash", func() {
		When("the transaction exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE tx_hash = \$1`).
					WithArgs("0xaa", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "tx_hash", "chain_id", "type"}).
						AddRow(1, "0xaa", 1, "CIRCLE_MINT"))
			})

			It("returns the transaction", func() {
				transaction, err := repo.FindByHash(ctx, "0xaa")
				Expect(err).NotTo(HaveOccurred())
				Expect(transaction.TxHash).To(Equal("0xaa"))
				Expect(transaction.Type).To(Equal("CIRCLE_MINT"))
			})
		})

		When("the transaction does not exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE tx_hash = \$1`).
					WithArgs("0xaa", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			})

			It("returns a not found error", func() {
				_, err := repo.FindByHash(ctx, "0xaa")
				Expect(err).To(MatchError(repository.ErrTransactionNotFound))
			})
		})
	})

	Describe("QueryTransactions", func() {
		When("filters are set", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE chain_id = \$1 AND type = \$2.*ORDER BY timestamp DESC`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "tx_hash", "chain_id", "type"}).
						AddRow(2, "0xbb", 1, "CIRCLE_BURN").
						AddRow(1, "0xaa", 1, "CIRCLE_BURN"))
			})

			It("returns the filtered rows", func() {
				transactions, err := repo.QueryTransactions(ctx, repository.TransactionFilter{
					ChainID: 1,
					Type:    "CIRCLE_BURN",
					Limit:   20,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).To(HaveLen(2))
				Expect(transactions[0].TxHash).To(Equal("0xbb"))
			})
		})

		When("the store is down", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "transactions"`).
					WillReturnError(errors.New("connection refused"))
			})

			It("returns a store unavailable error", func() {
				_, err := repo.QueryTransactions(ctx, repository.TransactionFilter{})
				Expect(err).To(MatchError(repository.ErrStoreUnavailable))
			})
		})
	})

	Describe("SummarizeByType", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT type, COUNT\(\*\) AS count, COALESCE\(SUM\(amount\), 0\) AS total_amount FROM "transactions".*GROUP BY .?type.?`).
				WillReturnRows(sqlmock.NewRows([]string{"type", "count", "total_amount"}).
					AddRow("CIRCLE_MINT", 2, "7.500000").
					AddRow("CIRCLE_BURN", 1, "2.000000"))
		})

		It("returns one aggregate row per type", func() {
			totals, err := repo.SummarizeByType(ctx, repository.TransactionFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(totals).To(HaveLen(2))
			Expect(totals[0].Type).To(Equal("CIRCLE_MINT"))
			Expect(totals[0].Count).To(Equal(int64(2)))
			Expect(totals[0].TotalAmount.String()).To(Equal("7.5"))
		})
	})

	Describe("GetWatermark", func() {
		When("the chain has a watermark", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "chain_watermarks" WHERE chain_id = \$1`).
					WillReturnRows(sqlmock.NewRows([]string{"chain_id", "block_number"}).
						AddRow(1, 12345))
			})

			It("returns the stored block number", func() {
				blockNumber, err := repo.GetWatermark(ctx, 1)
				Expect(err).NotTo(HaveOccurred())
				Expect(blockNumber).To(Equal(uint64(12345)))
			})
		})

		When("the chain was never polled", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "chain_watermarks" WHERE chain_id = \$1`).
					WillReturnRows(sqlmock.NewRows([]string{"chain_id"}))
			})

			It("returns a watermark not found error", func() {
				_, err := repo.GetWatermark(ctx, 1)
				Expect(err).To(MatchError(repository.ErrWatermarkNotFound))
			})
		})
	})

	Describe("SaveWatermark", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`INSERT INTO "chain_watermarks" .*ON CONFLICT \("chain_id"\) DO UPDATE`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("upserts the block number", func() {
			Expect(repo.SaveWatermark(ctx, 1, 12345)).To(Succeed())
		})
	})

	Describe("GetUser", func() {
		When("the user exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
					WithArgs("alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role"}).
						AddRow("user-1", "alice", "hash", "admin"))
			})

			It("returns the user", func() {
				user, err := repo.GetUser(ctx, "alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("alice"))
				Expect(user.Role).To(Equal("admin"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
					WithArgs("mallory", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			})

			It("returns a user not found error", func() {
				_, err := repo.GetUser(ctx, "mallory")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("RecomputeStatistics", func() {
		When("the rollup succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM "statistics" WHERE date = \$1`).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(`INSERT INTO statistics .*FROM transactions.*GROUP BY chain_id, type`).
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectCommit()
			})

			It("replaces the day inside one transaction", func() {
				Expect(repo.RecomputeStatistics(ctx, "2024-06-15")).To(Succeed())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM "statistics" WHERE date = \$1`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`INSERT INTO statistics`).
					WillReturnError(errors.New("connection refused"))
				mock.ExpectRollback()
			})

			It("rolls back and reports the store as unavailable", func() {
				err := repo.RecomputeStatistics(ctx, "2024-06-15")
				Expect(err).To(MatchError(repository.ErrStoreUnavailable))
			})
		})
	})
})
