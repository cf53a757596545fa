package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"circletracker/internal/chains"
	"circletracker/internal/classify"
	"circletracker/internal/repository"
	tokenIssuer "circletracker/pkg/jwt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrNotAuthorized error = errors.New("caller is not authorized")
var ErrUnknownScanner error = errors.New("no scanner for chain")
var ErrListenerRunning error = errors.New("listener already running")
var ErrListenerNotRunning error = errors.New("listener is not running")

type Config struct {
	PollInterval    time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

// Tracker coordinates fetch, classification and the dedup store, and serves
// the read API.
type Tracker struct {
	logs      *zap.SugaredLogger
	repo      Repository
	registry  *chains.Registry
	scanners  map[int64]ChainScanner
	jwtIssuer JWTIssuer
	cfg       Config

	mu        sync.Mutex
	listeners map[int64]context.CancelFunc
	wg        sync.WaitGroup
}

func NewTracker(
	logger *zap.SugaredLogger,
	repo Repository,
	registry *chains.Registry,
	scanners map[int64]ChainScanner,
	jwtIssuer JWTIssuer,
	cfg Config,
) *Tracker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 15 * time.Second
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}

	return &Tracker{
		logs:      logger,
		repo:      repo,
		registry:  registry,
		scanners:  scanners,
		jwtIssuer: jwtIssuer,
		cfg:       cfg,
		listeners: make(map[int64]context.CancelFunc),
	}
}

// Authenticate checks the credentials against the user table and issues a
// signed token carrying the user's role.
func (t *Tracker) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := t.repo.GetUser(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Role:       user.Role,
		Expiration: 24,
	}
	token := t.jwtIssuer.Generate(tokenInfo)
	signed, err := t.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// AuthorizeAdmin is the capability check for operator-facing control calls.
func (t *Tracker) AuthorizeAdmin(token string) error {
	claims, err := t.jwtIssuer.Validate(token)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotAuthorized, err)
	}

	if role, _ := claims["role"].(string); role != "admin" {
		return ErrNotAuthorized
	}

	return nil
}

// GetTransactions serves the filtered, paginated read API, newest first.
func (t *Tracker) GetTransactions(ctx context.Context, filter QueryFilter) ([]TransactionRecord, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = t.cfg.DefaultPageSize
	}
	if limit > t.cfg.MaxPageSize {
		limit = t.cfg.MaxPageSize
	}

	transactions, err := t.repo.QueryTransactions(ctx, repository.TransactionFilter{
		ChainID:   filter.ChainID,
		Type:      filter.Type,
		StartTime: filter.StartTime,
		EndTime:   filter.EndTime,
		Limit:     limit,
		Offset:    filter.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	return t.toRecords(transactions), nil
}

func (t *Tracker) GetTransactionByHash(ctx context.Context, txHash string) (TransactionRecord, error) {
	tx, err := t.repo.FindByHash(ctx, txHash)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("find by hash: %w", err)
	}

	return t.toRecord(tx), nil
}

// GetSummary folds the per-type aggregates of the filtered set into the
// mint/burn/cctp buckets.
func (t *Tracker) GetSummary(ctx context.Context, filter QueryFilter) (Summary, error) {
	totals, err := t.repo.SummarizeByType(ctx, repository.TransactionFilter{
		ChainID:   filter.ChainID,
		Type:      filter.Type,
		StartTime: filter.StartTime,
		EndTime:   filter.EndTime,
	})
	if err != nil {
		return Summary{}, fmt.Errorf("summarize transactions: %w", err)
	}

	summary := Summary{}
	var mint, burn, cctp decimal.Decimal
	for _, total := range totals {
		summary.TotalCount += total.Count
		switch total.Type {
		case string(classify.CircleMint):
			mint = mint.Add(total.TotalAmount)
		case string(classify.CircleBurn):
			burn = burn.Add(total.TotalAmount)
		case string(classify.CCTPBurn), string(classify.CCTPMint):
			cctp = cctp.Add(total.TotalAmount)
		}
	}
	summary.MintAmount = USDCAmount{Decimal: mint}
	summary.BurnAmount = USDCAmount{Decimal: burn}
	summary.CCTPAmount = USDCAmount{Decimal: cctp}

	return summary, nil
}

func (t *Tracker) SupportedChains() []ChainInfo {
	configs := t.registry.List()
	infos := make([]ChainInfo, 0, len(configs))
	for _, chain := range configs {
		infos = append(infos, ChainInfo{
			ID:   chain.ID,
			Name: chain.Name,
		})
	}
	return infos
}

func (t *Tracker) LatestBlockNumber(ctx context.Context, chainID int64) (uint64, error) {
	scanner, err := t.scannerFor(chainID)
	if err != nil {
		return 0, err
	}

	head, err := scanner.HeadBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("head block for chain %d: %w", chainID, err)
	}
	return head, nil
}

func (t *Tracker) GetStatistics(ctx context.Context, date string, chainID int64, txType string) ([]StatisticRecord, error) {
	statistics, err := t.repo.QueryStatistics(ctx, repository.StatisticFilter{
		Date:    date,
		ChainID: chainID,
		Type:    txType,
	})
	if err != nil {
		return nil, fmt.Errorf("query statistics: %w", err)
	}

	records := make([]StatisticRecord, len(statistics))
	for i, stat := range statistics {
		records[i] = StatisticRecord{
			Date:        stat.Date,
			ChainID:     stat.ChainID,
			Type:        stat.Type,
			Count:       stat.Count,
			TotalAmount: USDCAmount{Decimal: stat.TotalAmount},
			AvgAmount:   USDCAmount{Decimal: stat.AvgAmount},
		}
	}
	return records, nil
}

// RecomputeStatistics rebuilds the daily rollup for the given day, defaulting
// to today.
func (t *Tracker) RecomputeStatistics(ctx context.Context, date string) error {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	if err := t.repo.RecomputeStatistics(ctx, date); err != nil {
		return fmt.Errorf("recompute statistics: %w", err)
	}

	t.logs.Infow("statistics recomputed", "date", date)
	return nil
}

func (t *Tracker) scannerFor(chainID int64) (ChainScanner, error) {
	scanner, ok := t.scanners[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScanner, chainID)
	}
	return scanner, nil
}

func (t *Tracker) toRecords(transactions []repository.Transaction) []TransactionRecord {
	records := make([]TransactionRecord, len(transactions))
	for i, tx := range transactions {
		records[i] = t.toRecord(tx)
	}
	return records
}

func (t *Tracker) toRecord(tx repository.Transaction) TransactionRecord {
	return TransactionRecord{
		TxHash:      tx.TxHash,
		ChainID:     tx.ChainID,
		ChainName:   tx.ChainName,
		BlockNumber: tx.BlockNumber,
		Timestamp:   tx.Timestamp,
		FromAddress: tx.FromAddress,
		ToAddress:   tx.ToAddress,
		Amount:      USDCAmount{Decimal: tx.Amount},
		Type:        tx.Type,
		Status:      tx.Status,
	}
}
