// Package audit writes the issuance audit trail asynchronously.
package audit

import (
	"context"
	"time"

	"github.com/registrarlabs/credchain-backend/internal/model"
	"github.com/registrarlabs/credchain-backend/pkg/batcher"
	"go.uber.org/zap"
)

const (
	flushSize     = 64
	flushInterval = 2 * time.Second
	flushRPS      = 5
	enqueueWait   = 100 * time.Millisecond
)

type (
	// Repository stores batches of audit events.
	Repository interface {
		InsertIssuanceEvents(ctx context.Context, events []model.AuditEvent) error
	}
)

// Trail buffers issuance audit events and flushes them in batches. Recording
// is fire-and-forget: a full buffer or failed flush drops events with a log
// line and never blocks or fails the issuance path.
type Trail struct {
	batcher *batcher.Batcher[model.AuditEvent]
	logger  *zap.Logger
}

// NewTrail constructs a Trail flushing into repo.
func NewTrail(repo Repository, logger *zap.Logger) *Trail {
	logger = logger.Named("audit")
	return &Trail{
		batcher: batcher.New[model.AuditEvent](logger, repo.InsertIssuanceEvents, flushSize, flushInterval, flushRPS),
		logger:  logger,
	}
}

// Start begins background flushing.
func (t *Trail) Start(ctx context.Context) {
	t.batcher.Start(ctx)
}

// Stop flushes pending events and stops the background loop.
func (t *Trail) Stop() {
	t.batcher.Stop()
}

// Record enqueues one event, waiting at most briefly for buffer space.
func (t *Trail) Record(event model.AuditEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), enqueueWait)
	defer cancel()

	if err := t.batcher.Add(ctx, event); err != nil {
		t.logger.Warn("audit event dropped",
			zap.String("request_id", event.RequestID),
			zap.String("phase", string(event.Phase)),
			zap.Error(err))
	}
}
