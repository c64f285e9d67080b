package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/registrarlabs/credchain-backend/internal/model"
)

// InsertIssuanceEvents stores audit event rows in ClickHouse.
func (r *Repository) InsertIssuanceEvents(ctx context.Context, events []model.AuditEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_issuance_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO issuance_events (
	request_id,
	network,
	wallet_address,
	phase,
	tx_hash,
	token_id,
	has_token_id,
	detail,
	occurred_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare issuance events batch: %w", err)
	}

	for _, event := range events {
		if err = batch.Append(
			event.RequestID,
			string(event.Network),
			event.WalletAddress,
			string(event.Phase),
			event.TxHash,
			event.TokenID,
			event.HasTokenID,
			event.Detail,
			event.OccurredAt,
		); err != nil {
			return fmt.Errorf("append issuance event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert issuance events: %w", err)
	}
	return nil
}
