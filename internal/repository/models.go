package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the dedup store's unit: one accepted USDC mint/burn/transfer
// per transaction hash, globally unique across chains.
type Transaction struct {
	ID          uint            `gorm:"primaryKey"`
	TxHash      string          `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	ChainID     int64           `gorm:"not null;index"`
	ChainName   string          `gorm:"size:50;not null"`
	BlockNumber uint64          `gorm:"not null"`
	Timestamp   time.Time       `gorm:"not null;index"`
	FromAddress string          `gorm:"size:42;not null"`
	ToAddress   string          `gorm:"size:42;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(38,6);not null"` // USDC, 6 fractional digits
	Type        string          `gorm:"size:20;not null;index"`
	SourceChain *string         `gorm:"size:50"`
	TargetChain *string         `gorm:"size:50"`
	MessageHash *string         `gorm:"size:66"`
	Status      string          `gorm:"size:20;not null;default:CONFIRMED"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Event keeps the raw topics/data of an accepted log for audit, decoupled
// from classification.
type Event struct {
	ID              uint      `gorm:"primaryKey"`
	TxHash          string    `gorm:"size:66;not null;uniqueIndex:idx_events_tx_log"`
	LogIndex        uint32    `gorm:"not null;uniqueIndex:idx_events_tx_log"`
	ChainID         int64     `gorm:"not null;index"`
	ContractAddress string    `gorm:"size:42;not null"`
	EventName       string    `gorm:"size:100;not null;index"`
	Topics          string    `gorm:"type:text"`
	Data            string    `gorm:"type:text"`
	BlockNumber     uint64    `gorm:"not null"`
	Timestamp       time.Time `gorm:"not null"`
	CreatedAt       time.Time
}

// ChainWatermark is the last block durably processed by the poll loop of a
// chain; loops resume from it after a restart.
type ChainWatermark struct {
	ChainID     int64  `gorm:"primaryKey;autoIncrement:false"`
	BlockNumber uint64 `gorm:"not null"`
	UpdatedAt   time.Time
}

// Statistic is one day's aggregate per chain and transaction type.
type Statistic struct {
	ID          uint            `gorm:"primaryKey"`
	Date        string          `gorm:"size:10;not null;uniqueIndex:idx_stats_day"` // YYYY-MM-DD
	ChainID     int64           `gorm:"not null;uniqueIndex:idx_stats_day"`
	Type        string          `gorm:"size:20;not null;uniqueIndex:idx_stats_day"`
	Count       int64           `gorm:"not null;default:0"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(38,6);not null;default:0"`
	AvgAmount   decimal.Decimal `gorm:"type:decimal(38,6);not null;default:0"`
	CreatedAt   time.Time
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"size:10;not null;default:user"`
}

// TypeTotal is one row of a per-type aggregation over a filtered set.
type TypeTotal struct {
	Type        string
	Count       int64
	TotalAmount decimal.Decimal
}

// TransactionFilter narrows query and summary scans. Zero values mean "no
// constraint".
type TransactionFilter struct {
	ChainID   int64
	Type      string
	StartTime time.Time
	EndTime   time.Time
	Limit     int
	Offset    int
}

// StatisticFilter narrows statistics lookups.
type StatisticFilter struct {
	Date    string
	ChainID int64
	Type    string
}
