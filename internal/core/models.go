package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// USDCAmount renders with the token's full 6 fractional digits, so
// "1" becomes "1.000000" on the wire.
type USDCAmount struct {
	decimal.Decimal
}

func (a USDCAmount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.StringFixed(6) + `"`), nil
}

// TransactionRecord is the read-API view of a stored transaction.
type TransactionRecord struct {
	TxHash      string     `json:"txHash"`
	ChainID     int64      `json:"chainId"`
	ChainName   string     `json:"chainName"`
	BlockNumber uint64     `json:"blockNumber"`
	Timestamp   time.Time  `json:"timestamp"`
	FromAddress string     `json:"fromAddress"`
	ToAddress   string     `json:"toAddress"`
	Amount      USDCAmount `json:"amount"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
}

// QueryFilter narrows reads; zero values mean "no constraint".
type QueryFilter struct {
	ChainID   int64
	Type      string
	StartTime time.Time
	EndTime   time.Time
	Limit     int
	Offset    int
}

// BackfillSummary reports the outcome of one historical ingestion run.
type BackfillSummary struct {
	ChainID         int64               `json:"chainId"`
	FromBlock       uint64              `json:"fromBlock"`
	ToBlock         uint64              `json:"toBlock"`
	Attempted       int                 `json:"attempted"`
	Inserted        int                 `json:"inserted"`
	SkippedExisting int                 `json:"skippedExisting"`
	Classified      map[string]int      `json:"classificationCounts"`
	InsertedRecords []TransactionRecord `json:"data"`
}

// Summary buckets the filtered set's totals by semantic type.
type Summary struct {
	TotalCount int64      `json:"totalCount"`
	MintAmount USDCAmount `json:"mintAmount"`
	BurnAmount USDCAmount `json:"burnAmount"`
	CCTPAmount USDCAmount `json:"cctpAmount"`
}

type ChainInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StatisticRecord is one day's aggregate per chain and type.
type StatisticRecord struct {
	Date        string     `json:"date"`
	ChainID     int64      `json:"chainId"`
	Type        string     `json:"type"`
	Count       int64      `json:"count"`
	TotalAmount USDCAmount `json:"totalAmount"`
	AvgAmount   USDCAmount `json:"avgAmount"`
}
