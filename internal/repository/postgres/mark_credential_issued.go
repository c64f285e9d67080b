package postgres

import (
	"context"
	"fmt"
	"math"
	"time"
)

// MarkCredentialIssued atomically applies the PENDING -> ISSUED transition,
// setting token id, transaction hash, content id and the metadata copy in a
// single statement. tokenID may be nil when the mint event could not be
// decoded from the confirmed receipt.
func (r *Repository) MarkCredentialIssued(ctx context.Context, id int64, tokenID *uint64, txHash, cid string, metadata map[string]any) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("mark_credential_issued", err, start)
	}()

	var dbTokenID *int64
	if tokenID != nil {
		if *tokenID > math.MaxInt64 {
			return fmt.Errorf("token id %d overflows bigint", *tokenID)
		}
		v := int64(*tokenID)
		dbTokenID = &v
	}

	const query = `
UPDATE credentials
SET token_id = $2,
    issuance_tx_hash = $3,
    metadata_cid = $4,
    metadata_json = $5,
    state = 'ISSUED',
    error_detail = NULL,
    updated_at = now()
WHERE id = $1 AND state = 'PENDING'`

	tag, err := r.db.Exec(ctx, query, id, dbTokenID, txHash, cid, metadata)
	if err != nil {
		return fmt.Errorf("mark credential %d issued: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: credential %d is not pending", ErrInvalidTransition, id)
	}
	return nil
}
