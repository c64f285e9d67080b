package postgres

import (
	"context"
	"fmt"
	"time"
)

// MarkCredentialRevoked applies the ISSUED -> REVOKED transition and records
// the revocation transaction hash.
func (r *Repository) MarkCredentialRevoked(ctx context.Context, id int64, txHash string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("mark_credential_revoked", err, start)
	}()

	const query = `
UPDATE credentials
SET state = 'REVOKED',
    revocation_tx_hash = $2,
    updated_at = now()
WHERE id = $1 AND state = 'ISSUED'`

	tag, err := r.db.Exec(ctx, query, id, txHash)
	if err != nil {
		return fmt.Errorf("mark credential %d revoked: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: credential %d is not issued", ErrInvalidTransition, id)
	}
	return nil
}
