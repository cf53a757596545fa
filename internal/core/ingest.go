package core

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"circletracker/internal/chains"
	"circletracker/internal/classify"
	"circletracker/internal/ethereum"
	"circletracker/internal/repository"
)

// RunBackfill ingests the historical range [fromBlock, toBlock] for one
// chain: fetch, classify, drop OTHER, insert-if-absent. Re-running the same
// range is safe; duplicates are reported as skipped.
func (t *Tracker) RunBackfill(ctx context.Context, chainID int64, fromBlock, toBlock uint64) (BackfillSummary, error) {
	chain, err := t.registry.ByID(chainID)
	if err != nil {
		return BackfillSummary{}, err
	}

	scanner, err := t.scannerFor(chainID)
	if err != nil {
		return BackfillSummary{}, err
	}

	if toBlock == ethereum.LatestBlock {
		head, err := scanner.HeadBlock(ctx)
		if err != nil {
			return BackfillSummary{}, fmt.Errorf("resolve head block: %w", err)
		}
		toBlock = head
	}

	t.logs.Infow("backfill started",
		"chain_id", chainID,
		"from_block", fromBlock,
		"to_block", toBlock)

	summary, err := t.ingestRange(ctx, chain, scanner, fromBlock, toBlock)
	if err != nil {
		return summary, err
	}

	t.logs.Infow("backfill finished",
		"chain_id", chainID,
		"attempted", summary.Attempted,
		"inserted", summary.Inserted,
		"skipped_existing", summary.SkippedExisting)

	return summary, nil
}

// StartListener launches the poll loop for a chain. One loop per chain; a
// second start reports ErrListenerRunning.
func (t *Tracker) StartListener(chainID int64) error {
	chain, err := t.registry.ByID(chainID)
	if err != nil {
		return err
	}

	scanner, err := t.scannerFor(chainID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, running := t.listeners[chainID]; running {
		return fmt.Errorf("%w: chain %d", ErrListenerRunning, chainID)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.listeners[chainID] = cancel

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.runPollLoop(ctx, chain, scanner)

		t.mu.Lock()
		delete(t.listeners, chainID)
		t.mu.Unlock()
	}()

	return nil
}

// StopListener cancels a chain's poll loop; the loop exits between
// iterations, never mid-fetch.
func (t *Tracker) StopListener(chainID int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cancel, running := t.listeners[chainID]
	if !running {
		return fmt.Errorf("%w: chain %d", ErrListenerNotRunning, chainID)
	}

	cancel()
	return nil
}

// Shutdown cancels all poll loops and waits for them to drain.
func (t *Tracker) Shutdown() {
	t.mu.Lock()
	for _, cancel := range t.listeners {
		cancel()
	}
	t.mu.Unlock()

	t.wg.Wait()
}

func (t *Tracker) runPollLoop(ctx context.Context, chain chains.ChainConfig, scanner ChainScanner) {
	t.logs.Infow("listener started", "chain_id", chain.ID, "chain", chain.Name)

	last, err := t.repo.GetWatermark(ctx, chain.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrWatermarkNotFound) {
			// a store outage must not discard the durable watermark, the gap
			// up to the head would be skipped and never re-scanned
			t.logs.Errorw("could not load watermark, stopping listener",
				"chain_id", chain.ID,
				"error", err)
			return
		}

		// a fresh chain starts from the current head rather than genesis
		head, headErr := scanner.HeadBlock(ctx)
		if headErr != nil {
			t.logs.Errorw("listener could not resolve a starting block, stopping",
				"chain_id", chain.ID,
				"watermark_error", err,
				"head_error", headErr)
			return
		}
		last = head

		if saveErr := t.repo.SaveWatermark(ctx, chain.ID, last); saveErr != nil {
			t.logs.Errorw("failed to persist initial watermark",
				"chain_id", chain.ID,
				"error", saveErr)
		}
	}

	for {
		select {
		case <-ctx.Done():
			t.logs.Infow("listener stopped", "chain_id", chain.ID)
			return
		case <-time.After(t.cfg.PollInterval):
		}

		head, err := scanner.HeadBlock(ctx)
		if err != nil {
			t.logs.Errorw("head poll failed, retrying next iteration",
				"chain_id", chain.ID,
				"error", err)
			continue
		}

		if head <= last {
			continue
		}

		summary, err := t.ingestRange(ctx, chain, scanner, last+1, head)
		if err != nil {
			// watermark stays put so the failed range is re-scanned
			t.logs.Errorw("poll ingestion failed, range will be re-scanned",
				"chain_id", chain.ID,
				"from_block", last+1,
				"to_block", head,
				"error", err)
			continue
		}

		last = head
		if err := t.repo.SaveWatermark(ctx, chain.ID, last); err != nil {
			t.logs.Errorw("failed to persist watermark",
				"chain_id", chain.ID,
				"block_number", last,
				"error", err)
		}

		if summary.Inserted > 0 {
			t.logs.Infow("captured transactions",
				"chain_id", chain.ID,
				"inserted", summary.Inserted,
				"skipped_existing", summary.SkippedExisting)
		}
	}
}

func (t *Tracker) ingestRange(ctx context.Context, chain chains.ChainConfig, scanner ChainScanner, fromBlock, toBlock uint64) (BackfillSummary, error) {
	summary := BackfillSummary{
		ChainID:    chain.ID,
		FromBlock:  fromBlock,
		ToBlock:    toBlock,
		Classified: make(map[string]int),
	}

	transfers, err := scanner.FetchTransferLogs(ctx, fromBlock, toBlock)
	if err != nil {
		return summary, fmt.Errorf("fetch transfer logs: %w", err)
	}

	for _, transfer := range transfers {
		txType := classify.Classify(transfer.From, transfer.To)
		summary.Classified[string(txType)]++

		if txType == classify.Other {
			continue
		}

		summary.Attempted++

		tx := repository.Transaction{
			TxHash:      strings.ToLower(transfer.TransactionHash.Hex()),
			ChainID:     chain.ID,
			ChainName:   chain.Name,
			BlockNumber: transfer.BlockNumber,
			Timestamp:   time.Unix(int64(transfer.BlockTimestamp), 0).UTC(),
			FromAddress: transfer.From.Hex(),
			ToAddress:   transfer.To.Hex(),
			Amount:      classify.NormalizeAmount(transfer.RawAmount),
			Type:        string(txType),
			Status:      "CONFIRMED",
		}

		inserted, err := t.repo.InsertIfAbsent(ctx, tx)
		if err != nil {
			// store failures are never swallowed, the operator re-runs the range
			return summary, fmt.Errorf("insert transaction %s: %w", tx.TxHash, err)
		}

		if !inserted {
			summary.SkippedExisting++
			continue
		}

		summary.Inserted++
		summary.InsertedRecords = append(summary.InsertedRecords, t.toRecord(tx))

		if err := t.repo.SaveEvents(ctx, []repository.Event{auditEvent(chain, transfer)}); err != nil {
			t.logs.Errorw("failed to save audit event",
				"chain_id", chain.ID,
				"tx_hash", tx.TxHash,
				"error", err)
		}
	}

	return summary, nil
}

func auditEvent(chain chains.ChainConfig, transfer ethereum.TransferLog) repository.Event {
	topics := make([]string, len(transfer.Topics))
	for i, topic := range transfer.Topics {
		topics[i] = topic.Hex()
	}

	return repository.Event{
		TxHash:          strings.ToLower(transfer.TransactionHash.Hex()),
		LogIndex:        transfer.LogIndex,
		ChainID:         chain.ID,
		ContractAddress: chain.USDCAddress.Hex(),
		EventName:       "Transfer",
		Topics:          strings.Join(topics, ","),
		Data:            "0x" + hex.EncodeToString(transfer.Data),
		BlockNumber:     transfer.BlockNumber,
		Timestamp:       time.Unix(int64(transfer.BlockTimestamp), 0).UTC(),
	}
}
