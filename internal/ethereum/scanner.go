package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"circletracker/internal/chains"
	"circletracker/pkg/retry"
)

// LatestBlock asks the scanner to resolve the chain head at call time.
const LatestBlock uint64 = math.MaxUint64

// TransferTopic is keccak256("Transfer(address,address,uint256)").
var TransferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

var ErrInvalidRange error = errors.New("fromBlock is greater than toBlock")

type ScannerConfig struct {
	// MaxBlockSpan caps the block range of a single eth_getLogs call. Public
	// providers commonly reject wider ranges.
	MaxBlockSpan uint64
	// CallTimeout bounds every individual RPC call.
	CallTimeout time.Duration
	// Retry bounds the immediate re-attempts of a failing sub-range or head
	// query before it is given up on.
	Retry retry.Policy
}

// Scanner fetches USDC Transfer logs from one chain's RPC endpoint.
type Scanner struct {
	logs   *zap.SugaredLogger
	client EthClient
	chain  chains.ChainConfig
	cfg    ScannerConfig
}

func NewScanner(logger *zap.SugaredLogger, client EthClient, chain chains.ChainConfig, cfg ScannerConfig) *Scanner {
	if cfg.MaxBlockSpan == 0 {
		cfg.MaxBlockSpan = 10
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 10 * time.Second
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry.MaxAttempts = 3
	}

	return &Scanner{
		logs:   logger,
		client: client,
		chain:  chain,
		cfg:    cfg,
	}
}

// HeadBlock resolves the most recent block number known to the chain.
func (s *Scanner) HeadBlock(ctx context.Context) (uint64, error) {
	var head uint64
	err := retry.Do(ctx, s.cfg.Retry, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
		defer cancel()

		var err error
		head, err = s.client.BlockNumber(callCtx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("resolve head block for chain %d: %w", s.chain.ID, err)
	}
	return head, nil
}

// FetchTransferLogs retrieves the decoded Transfer logs of the chain's USDC
// contract in [fromBlock, toBlock], in ascending block order. toBlock may be
// LatestBlock, resolved to a concrete head immediately before the range
// queries go out. Ranges wider than MaxBlockSpan are split into contiguous
// sub-ranges issued sequentially; a sub-range that keeps failing after the
// bounded retries is logged and skipped so one flaky span cannot sink the
// whole fetch.
func (s *Scanner) FetchTransferLogs(ctx context.Context, fromBlock, toBlock uint64) ([]TransferLog, error) {
	if toBlock == LatestBlock {
		head, err := s.HeadBlock(ctx)
		if err != nil {
			return nil, err
		}
		toBlock = head
	}

	if fromBlock > toBlock {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidRange, fromBlock, toBlock)
	}

	// block timestamps repeat across logs in the same block, resolve each
	// block once per fetch
	timestamps := make(map[uint64]uint64)

	var transfers []TransferLog
	for start := fromBlock; start <= toBlock; {
		end := start + s.cfg.MaxBlockSpan - 1
		if end > toBlock || end < start {
			end = toBlock
		}

		rawLogs, err := s.filterRange(ctx, start, end)
		if err != nil {
			if ctx.Err() != nil {
				return transfers, ctx.Err()
			}
			s.logs.Errorw("sub-range query failed, skipping",
				"chain_id", s.chain.ID,
				"from_block", start,
				"to_block", end,
				"error", err)
			start = end + 1
			continue
		}

		for _, rawLog := range rawLogs {
			transfer, err := s.decodeTransfer(ctx, rawLog, timestamps)
			if err != nil {
				s.logs.Errorw("dropping malformed transfer log",
					"chain_id", s.chain.ID,
					"tx_hash", rawLog.TxHash.Hex(),
					"log_index", rawLog.Index,
					"error", err)
				continue
			}
			transfers = append(transfers, transfer)
		}

		if end == toBlock {
			break
		}
		start = end + 1
	}

	return transfers, nil
}

func (s *Scanner) filterRange(ctx context.Context, fromBlock, toBlock uint64) ([]types.Log, error) {
	query := goethereum.FilterQuery{
		Addresses: []common.Address{s.chain.USDCAddress},
		Topics:    [][]common.Hash{{TransferTopic}},
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
	}

	var rawLogs []types.Log
	err := retry.Do(ctx, s.cfg.Retry, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
		defer cancel()

		var err error
		rawLogs, err = s.client.FilterLogs(callCtx, query)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("filter logs: %w", err)
	}
	return rawLogs, nil
}

func (s *Scanner) decodeTransfer(ctx context.Context, rawLog types.Log, timestamps map[uint64]uint64) (TransferLog, error) {
	// Transfer(address indexed from, address indexed to, uint256 value)
	if len(rawLog.Topics) != 3 {
		return TransferLog{}, fmt.Errorf("expected 3 topics, got %d", len(rawLog.Topics))
	}
	if len(rawLog.Data) != 32 {
		return TransferLog{}, fmt.Errorf("expected 32 data bytes, got %d", len(rawLog.Data))
	}

	timestamp, err := s.blockTimestamp(ctx, rawLog.BlockNumber, timestamps)
	if err != nil {
		return TransferLog{}, fmt.Errorf("resolve block timestamp: %w", err)
	}

	return TransferLog{
		TransactionHash: rawLog.TxHash,
		BlockNumber:     rawLog.BlockNumber,
		LogIndex:        uint32(rawLog.Index),
		From:            common.BytesToAddress(rawLog.Topics[1].Bytes()),
		To:              common.BytesToAddress(rawLog.Topics[2].Bytes()),
		RawAmount:       new(big.Int).SetBytes(rawLog.Data),
		BlockTimestamp:  timestamp,
		Topics:          rawLog.Topics,
		Data:            rawLog.Data,
	}, nil
}

func (s *Scanner) blockTimestamp(ctx context.Context, blockNumber uint64, timestamps map[uint64]uint64) (uint64, error) {
	if timestamp, ok := timestamps[blockNumber]; ok {
		return timestamp, nil
	}

	var header *types.Header
	err := retry.Do(ctx, s.cfg.Retry, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
		defer cancel()

		var err error
		header, err = s.client.HeaderByNumber(callCtx, new(big.Int).SetUint64(blockNumber))
		return err
	})
	if err != nil {
		return 0, err
	}

	timestamps[blockNumber] = header.Time
	return header.Time, nil
}
