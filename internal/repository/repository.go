package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"circletracker/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrTransactionNotFound error = errors.New("transaction not found")
var ErrWatermarkNotFound error = errors.New("no watermark for chain")

// ErrStoreUnavailable wraps every persistence-layer failure so callers can
// fail closed on writes and degrade gracefully on reads.
var ErrStoreUnavailable error = errors.New("store unavailable")

type TrackerRepository struct {
	db *db.PostgresDB
}

func NewTrackerRepository(database *db.PostgresDB) *TrackerRepository {
	return &TrackerRepository{
		db: database,
	}
}

func (r *TrackerRepository) MigrateAndSeed(ctx context.Context) error {

	err := r.db.MigrateTable(
		&Transaction{},
		&Event{},
		&ChainWatermark{},
		&Statistic{},
		&User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "alice",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
			Role:         "admin",
		},
		{
			ID:           uuid.NewString(),
			Username:     "bob",
			PasswordHash: "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
			Role:         "user",
		},
		{
			ID:           uuid.NewString(),
			Username:     "carol",
			PasswordHash: "$2a$10$sIVvau/Udc4hgV/xny/IE.LRHVVuTiMF0UTGt.SFfRhCYvunds4h2",
			Role:         "user",
		},
	}
	err = r.db.SeedTable(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed user table: %w", err)
	}

	return nil
}

// InsertIfAbsent atomically inserts tx unless a row with the same tx hash
// already exists, relying on the unique index and ON CONFLICT DO NOTHING.
// It reports whether the row was inserted; a duplicate is a normal outcome,
// not an error.
func (r *TrackerRepository) InsertIfAbsent(ctx context.Context, tx Transaction) (bool, error) {
	res := r.db.Session(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}},
			DoNothing: true,
		}).
		Create(&tx)
	if res.Error != nil {
		return false, fmt.Errorf("%w: insert transaction: %s", ErrStoreUnavailable, res.Error)
	}

	return res.RowsAffected == 1, nil
}

// SaveEvents persists raw audit logs, ignoring (txHash, logIndex) pairs that
// are already recorded.
func (r *TrackerRepository) SaveEvents(ctx context.Context, events []Event) error {
	if len(events) == 0 {
		return nil
	}

	res := r.db.Session(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "log_index"}},
			DoNothing: true,
		}).
		Create(&events)
	if res.Error != nil {
		return fmt.Errorf("%w: save events: %s", ErrStoreUnavailable, res.Error)
	}

	return nil
}

func (r *TrackerRepository) FindByHash(ctx context.Context, txHash string) (Transaction, error) {
	var tx Transaction
	err := r.db.GetOneBy(ctx, "tx_hash", txHash, &tx)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("%w: find by hash: %s", ErrStoreUnavailable, err)
	}

	return tx, nil
}

// QueryTransactions returns the filtered set ordered newest timestamp first.
func (r *TrackerRepository) QueryTransactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	transactions := []Transaction{}

	query := r.applyFilter(r.db.Session(ctx).Model(&Transaction{}), filter).
		Order("timestamp DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("%w: query transactions: %s", ErrStoreUnavailable, err)
	}

	return transactions, nil
}

// SummarizeByType aggregates count and total amount per transaction type over
// the filtered set. Limit and Offset in the filter are ignored.
func (r *TrackerRepository) SummarizeByType(ctx context.Context, filter TransactionFilter) ([]TypeTotal, error) {
	totals := []TypeTotal{}

	err := r.applyFilter(r.db.Session(ctx).Model(&Transaction{}), filter).
		Select("type, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount").
		Group("type").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("%w: summarize transactions: %s", ErrStoreUnavailable, err)
	}

	return totals, nil
}

func (r *TrackerRepository) GetWatermark(ctx context.Context, chainID int64) (uint64, error) {
	var watermark ChainWatermark
	err := r.db.Session(ctx).First(&watermark, "chain_id = ?", chainID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrWatermarkNotFound
		}
		return 0, fmt.Errorf("%w: get watermark: %s", ErrStoreUnavailable, err)
	}

	return watermark.BlockNumber, nil
}

func (r *TrackerRepository) SaveWatermark(ctx context.Context, chainID int64, blockNumber uint64) error {
	watermark := ChainWatermark{
		ChainID:     chainID,
		BlockNumber: blockNumber,
	}

	err := r.db.Session(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chain_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"block_number", "updated_at"}),
		}).
		Create(&watermark).Error
	if err != nil {
		return fmt.Errorf("%w: save watermark: %s", ErrStoreUnavailable, err)
	}

	return nil
}

func (r *TrackerRepository) GetUser(ctx context.Context, username string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("%w: get user by username: %s", ErrStoreUnavailable, err)
	}

	return user, nil
}

func (r *TrackerRepository) QueryStatistics(ctx context.Context, filter StatisticFilter) ([]Statistic, error) {
	statistics := []Statistic{}

	query := r.db.Session(ctx).Model(&Statistic{})
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}
	if filter.ChainID != 0 {
		query = query.Where("chain_id = ?", filter.ChainID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	if err := query.Order("date DESC, chain_id, type").Find(&statistics).Error; err != nil {
		return nil, fmt.Errorf("%w: query statistics: %s", ErrStoreUnavailable, err)
	}

	return statistics, nil
}

// RecomputeStatistics rebuilds the daily rollup for one calendar day
// (YYYY-MM-DD) from the transactions table.
func (r *TrackerRepository) RecomputeStatistics(ctx context.Context, date string) error {
	err := r.db.Session(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date = ?", date).Delete(&Statistic{}).Error; err != nil {
			return err
		}

		return tx.Exec(`
			INSERT INTO statistics (date, chain_id, type, count, total_amount, avg_amount, created_at)
			SELECT ?, chain_id, type, COUNT(*), SUM(amount), AVG(amount), NOW()
			FROM transactions
			WHERE DATE(timestamp) = DATE(?)
			GROUP BY chain_id, type`, date, date).Error
	})
	if err != nil {
		return fmt.Errorf("%w: recompute statistics: %s", ErrStoreUnavailable, err)
	}

	return nil
}

func (r *TrackerRepository) applyFilter(query *gorm.DB, filter TransactionFilter) *gorm.DB {
	if filter.ChainID != 0 {
		query = query.Where("chain_id = ?", filter.ChainID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if !filter.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", filter.EndTime)
	}
	return query
}
