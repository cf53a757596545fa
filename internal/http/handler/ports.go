package handler

import (
	"context"
	"net/http"

	"circletracker/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TrackerService . TrackerService
type TrackerService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	AuthorizeAdmin(token string) error
	RunBackfill(ctx context.Context, chainID int64, fromBlock, toBlock uint64) (core.BackfillSummary, error)
	StartListener(chainID int64) error
	StopListener(chainID int64) error
	GetTransactions(ctx context.Context, filter core.QueryFilter) ([]core.TransactionRecord, error)
	GetTransactionByHash(ctx context.Context, txHash string) (core.TransactionRecord, error)
	GetSummary(ctx context.Context, filter core.QueryFilter) (core.Summary, error)
	SupportedChains() []core.ChainInfo
	LatestBlockNumber(ctx context.Context, chainID int64) (uint64, error)
	GetStatistics(ctx context.Context, date string, chainID int64, txType string) ([]core.StatisticRecord, error)
	RecomputeStatistics(ctx context.Context, date string) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
