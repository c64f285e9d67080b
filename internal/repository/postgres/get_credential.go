package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/registrarlabs/credchain-backend/internal/model"
	"github.com/registrarlabs/credchain-backend/pkg/safe"
)

// GetCredential loads one credential row by primary key.
func (r *Repository) GetCredential(ctx context.Context, id int64) (record *model.CredentialRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_credential", err, start)
	}()

	const query = `
SELECT id, token_id, student_id, wallet_address, issuance_tx_hash,
       revocation_tx_hash, metadata_json, metadata_cid, state, error_detail,
       created_at, updated_at
FROM credentials
WHERE id = $1`

	record = &model.CredentialRecord{}
	var (
		tokenID     *int64
		metadataCID *string
		state       string
	)
	row := r.db.QueryRow(ctx, query, id)
	err = row.Scan(
		&record.ID,
		&tokenID,
		&record.StudentID,
		&record.WalletAddress,
		&record.IssuanceTxHash,
		&record.RevocationTxHash,
		&record.MetadataJSON,
		&metadataCID,
		&state,
		&record.ErrorDetail,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: credential %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("select credential %d: %w", id, err)
	}

	if tokenID != nil {
		v, convErr := safe.Uint64(*tokenID)
		if convErr != nil {
			return nil, fmt.Errorf("credential %d token id: %w", id, convErr)
		}
		record.TokenID = &v
	}
	if metadataCID != nil {
		record.MetadataCID = *metadataCID
	}
	record.State = model.CredentialState(state)

	return record, nil
}
