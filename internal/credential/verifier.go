package credential

import (
	"context"
	"fmt"
	"time"

	"github.com/registrarlabs/credchain-backend/internal/model"
	"github.com/registrarlabs/credchain-backend/pkg/safe"
	"github.com/registrarlabs/credchain-backend/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultVerifyWorkers = 8

// Verifier reconstructs verification state from the chain and the content
// store. Results are computed fresh per request and never persisted.
type Verifier struct {
	ledger      Ledger
	store       ContentStore
	metrics     VerifierMetrics
	logger      *zap.Logger
	workerCount int
}

// NewVerifier constructs a Verifier.
func NewVerifier(ledger Ledger, store ContentStore, metrics VerifierMetrics, logger *zap.Logger) (*Verifier, error) {
	if ledger == nil || store == nil {
		return nil, fmt.Errorf("ledger and store are required")
	}
	if metrics == nil {
		return nil, fmt.Errorf("verifier metrics is required")
	}
	return &Verifier{
		ledger:      ledger,
		store:       store,
		metrics:     metrics,
		logger:      logger.Named("verifier"),
		workerCount: defaultVerifyWorkers,
	}, nil
}

// VerifyByID builds the verification record for one token. A nonexistent
// token or any failed read-only call yields an invalid record, not an error:
// "not valid" is an expected outcome. Unreachable or malformed metadata
// downgrades to an empty document; the ownership proof stands on its own.
func (v *Verifier) VerifyByID(ctx context.Context, tokenID uint64) model.VerificationRecord {
	started := time.Now()
	record := model.VerificationRecord{TokenID: tokenID, Metadata: map[string]any{}}
	defer func() {
		v.metrics.ObserveVerifyByID(record.IsValid, started)
	}()

	owner, err := v.ledger.OwnerOf(ctx, tokenID)
	if err != nil {
		record.ErrorDetail = err.Error()
		return record
	}
	record.OwnerAddress = owner

	uri, err := v.ledger.TokenURI(ctx, tokenID)
	if err != nil {
		record.ErrorDetail = err.Error()
		return record
	}
	record.TokenURI = uri

	if uri != "" {
		doc, err := v.store.Fetch(ctx, uri)
		if err != nil {
			v.logger.Warn("metadata unavailable, returning empty document",
				zap.Uint64("token_id", tokenID), zap.String("uri", uri), zap.Error(err))
		} else {
			record.Metadata = doc
		}
	}

	record.IsValid = true
	return record
}

// VerifyByWallet enumerates every token held by wallet and verifies each.
// Per-index lookups run concurrently; results keep enumeration order. A
// failure resolving one index is logged and skipped so a single bad index
// cannot abort the rest of the batch.
func (v *Verifier) VerifyByWallet(ctx context.Context, wallet string) (records []model.VerificationRecord, err error) {
	started := time.Now()
	defer func() {
		v.metrics.ObserveVerifyByWallet(err, len(records), started)
	}()

	if !v.ledger.ValidAddress(wallet) {
		return nil, fmt.Errorf("%w: wallet address %q", ErrInvalidInput, wallet)
	}

	balance, err := v.ledger.BalanceOf(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", wallet, err)
	}
	count, err := safe.Int(balance)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", wallet, err)
	}
	if count == 0 {
		return []model.VerificationRecord{}, nil
	}

	indices := make([]int, count)
	for idx := range indices {
		indices[idx] = idx
	}

	workers := v.workerCount
	if count < workers {
		workers = count
	}

	slots := make([]*model.VerificationRecord, count)
	err = workerpool.Process(ctx, workers, indices, func(ctx context.Context, idx int) error {
		tokenID, lookupErr := v.ledger.TokenOfOwnerByIndex(ctx, wallet, uint64(idx))
		if lookupErr != nil {
			v.logger.Warn("skipping unresolvable token index",
				zap.String("wallet", wallet), zap.Int("index", idx), zap.Error(lookupErr))
			return nil
		}
		record := v.VerifyByID(ctx, tokenID)
		slots[idx] = &record
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}

	records = make([]model.VerificationRecord, 0, count)
	for _, slot := range slots {
		if slot != nil {
			records = append(records, *slot)
		}
	}
	return records, nil
}
