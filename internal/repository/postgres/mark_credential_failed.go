package postgres

import (
	"context"
	"fmt"
	"time"
)

// MarkCredentialFailed applies the PENDING -> ERROR transition and attaches
// the diagnostic detail for operator follow-up.
func (r *Repository) MarkCredentialFailed(ctx context.Context, id int64, detail string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("mark_credential_failed", err, start)
	}()

	const query = `
UPDATE credentials
SET state = 'ERROR',
    error_detail = $2,
    updated_at = now()
WHERE id = $1 AND state = 'PENDING'`

	tag, err := r.db.Exec(ctx, query, id, detail)
	if err != nil {
		return fmt.Errorf("mark credential %d failed: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: credential %d is not pending", ErrInvalidTransition, id)
	}
	return nil
}
