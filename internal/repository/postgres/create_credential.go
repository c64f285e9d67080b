package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/registrarlabs/credchain-backend/internal/model"
)

// CreateCredential inserts a new PENDING credential row for a student and
// wallet and returns it.
func (r *Repository) CreateCredential(ctx context.Context, studentID int64, wallet string) (record *model.CredentialRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("create_credential", err, start)
	}()

	const query = `
INSERT INTO credentials (student_id, wallet_address, state)
VALUES ($1, $2, 'PENDING')
RETURNING id, created_at, updated_at`

	record = &model.CredentialRecord{
		StudentID:     studentID,
		WalletAddress: wallet,
		State:         model.StatePending,
	}
	row := r.db.QueryRow(ctx, query, studentID, wallet)
	if err = row.Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert credential: %w", err)
	}
	return record, nil
}
