package core

import (
	"context"

	"github.com/golang-jwt/jwt"

	"circletracker/internal/ethereum"
	"circletracker/internal/repository"
	tokenIssuer "circletracker/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	InsertIfAbsent(ctx context.Context, tx repository.Transaction) (bool, error)
	SaveEvents(ctx context.Context, events []repository.Event) error
	FindByHash(ctx context.Context, txHash string) (repository.Transaction, error)
	QueryTransactions(ctx context.Context, filter repository.TransactionFilter) ([]repository.Transaction, error)
	SummarizeByType(ctx context.Context, filter repository.TransactionFilter) ([]repository.TypeTotal, error)
	GetWatermark(ctx context.Context, chainID int64) (uint64, error)
	SaveWatermark(ctx context.Context, chainID int64, blockNumber uint64) error
	GetUser(ctx context.Context, username string) (repository.User, error)
	QueryStatistics(ctx context.Context, filter repository.StatisticFilter) ([]repository.Statistic, error)
	RecomputeStatistics(ctx context.Context, date string) error
}

//counterfeiter:generate -o fake -fake-name ChainScanner . ChainScanner
type ChainScanner interface {
	HeadBlock(ctx context.Context) (uint64, error)
	FetchTransferLogs(ctx context.Context, fromBlock, toBlock uint64) ([]ethereum.TransferLog, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
