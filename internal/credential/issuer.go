package credential

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/registrarlabs/credchain-backend/internal/model"
	"go.uber.org/zap"
)

const issuanceDateLayout = "2006-01-02"

// IssueRequest describes one credential issuance.
type IssueRequest struct {
	StudentID     int64
	WalletAddress string
	Data          model.CredentialData
}

// Issuer drives the issuance workflow: validate, upload metadata, submit the
// mint transaction, wait for confirmation and reconcile the emitted event
// into the durable record. One call handles one request; clients are injected
// once and reused across requests.
type Issuer struct {
	ledger  Ledger
	store   ContentStore
	records Records
	audit   AuditTrail
	network model.Network
	metrics IssuerMetrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewIssuer constructs an Issuer.
func NewIssuer(
	ledger Ledger,
	store ContentStore,
	records Records,
	audit AuditTrail,
	network model.Network,
	metrics IssuerMetrics,
	logger *zap.Logger,
) (*Issuer, error) {
	if ledger == nil || store == nil || records == nil {
		return nil, fmt.Errorf("ledger, store and records are required")
	}
	if metrics == nil {
		return nil, fmt.Errorf("issuer metrics is required")
	}
	if audit == nil {
		audit = noopAudit{}
	}

	return &Issuer{
		ledger:  ledger,
		store:   store,
		records: records,
		audit:   audit,
		network: network,
		metrics: metrics,
		logger:  logger.Named("issuer"),
		now:     time.Now,
	}, nil
}

// Issue runs the full issuance workflow. Expected failures (bad input, store
// or ledger errors, reverts) come back as typed errors after the record was
// driven to its terminal ERROR state; the record is never left PENDING on any
// return path. A confirmed transaction whose mint event cannot be decoded is
// still a success: the token id stays unset and the result carries a
// diagnostic message.
func (i *Issuer) Issue(ctx context.Context, req IssueRequest) (res *model.IssueResult, err error) {
	started := time.Now()
	defer func() {
		i.metrics.ObserveIssue(err, started)
	}()

	requestID := uuid.NewString()
	logger := i.logger.With(
		zap.String("request_id", requestID),
		zap.String("wallet", req.WalletAddress),
		zap.Int64("student_id", req.StudentID),
	)

	data, err := i.validate(ctx, req)
	if err != nil {
		return nil, err
	}
	i.auditEvent(requestID, req.WalletAddress, model.PhaseValidated, "", nil, "")

	record, err := i.records.CreateCredential(ctx, req.StudentID, req.WalletAddress)
	if err != nil {
		return nil, fmt.Errorf("create credential record: %w", err)
	}
	logger = logger.With(zap.Int64("credential_id", record.ID))

	metadata := buildMetadata(data)
	cid, err := i.store.Upload(ctx, metadata)
	if err != nil {
		i.fail(ctx, record.ID, requestID, req.WalletAddress, fmt.Sprintf("metadata upload failed: %v", err), logger)
		return nil, fmt.Errorf("upload metadata: %w", err)
	}
	logger.Info("metadata uploaded", zap.String("cid", cid))
	i.auditEvent(requestID, req.WalletAddress, model.PhaseUploaded, "", nil, cid)

	submitted, err := i.ledger.SubmitIssuance(ctx, req.WalletAddress, cid)
	if err != nil {
		i.fail(ctx, record.ID, requestID, req.WalletAddress, fmt.Sprintf("mint submission failed: %v", err), logger)
		return nil, fmt.Errorf("submit issuance: %w", err)
	}
	txHash := submitted.TxHash.Hex()
	i.auditEvent(requestID, req.WalletAddress, model.PhaseConfirmed, txHash, nil, "")

	event, found := i.ledger.DecodeIssuanceEvent(submitted.Receipt)

	var tokenID *uint64
	tokenURI := cid
	message := ""
	if found {
		tokenID = &event.TokenID
		tokenURI = event.TokenURI
	} else {
		message = "credential issued, but the token id could not be read from the mint event"
		logger.Warn("mint event missing from confirmed receipt", zap.String("tx_hash", txHash))
	}

	if err := i.records.MarkCredentialIssued(ctx, record.ID, tokenID, txHash, cid, metadata); err != nil {
		// The mint is irreversible at this point. Surface the record
		// problem to the operator instead of leaving the row PENDING.
		logger.Error("credential minted but record update failed", zap.Error(err))
		i.fail(ctx, record.ID, requestID, req.WalletAddress,
			fmt.Sprintf("minted on chain (tx %s) but record update failed: %v", txHash, err), logger)
		message = fmt.Sprintf("credential minted (tx %s) but the local record could not be updated", txHash)
	} else {
		i.auditEvent(requestID, req.WalletAddress, model.PhaseIssued, txHash, tokenID, cid)
	}

	if found {
		logger.Info("credential issued", zap.Uint64("token_id", event.TokenID), zap.String("tx_hash", txHash))
	}

	return &model.IssueResult{
		Success:  true,
		TxHash:   txHash,
		TokenID:  tokenID,
		TokenURI: tokenURI,
		Message:  message,
	}, nil
}

// Revoke submits a revocation for an issued credential and records the
// ISSUED -> REVOKED transition.
func (i *Issuer) Revoke(ctx context.Context, credentialID int64) (res *model.IssueResult, err error) {
	started := time.Now()
	defer func() {
		i.metrics.ObserveRevoke(err, started)
	}()

	record, err := i.records.GetCredential(ctx, credentialID)
	if err != nil {
		return nil, fmt.Errorf("load credential %d: %w", credentialID, err)
	}
	if record.State != model.StateIssued || record.TokenID == nil {
		return nil, fmt.Errorf("%w: credential %d state %s", ErrNotIssuable, credentialID, record.State)
	}

	submitted, err := i.ledger.SubmitRevocation(ctx, *record.TokenID)
	if err != nil {
		return nil, fmt.Errorf("submit revocation: %w", err)
	}
	txHash := submitted.TxHash.Hex()

	if err := i.records.MarkCredentialRevoked(ctx, credentialID, txHash); err != nil {
		i.logger.Error("revoked on chain but record update failed",
			zap.Int64("credential_id", credentialID), zap.Error(err))
		return nil, fmt.Errorf("mark revoked: %w", err)
	}
	i.auditEvent(uuid.NewString(), record.WalletAddress, model.PhaseRevoked, txHash, record.TokenID, "")

	return &model.IssueResult{Success: true, TxHash: txHash, TokenID: record.TokenID}, nil
}

// validate rejects malformed input before any external call and fills
// credential fields from the student record when the caller left them empty.
func (i *Issuer) validate(ctx context.Context, req IssueRequest) (model.CredentialData, error) {
	data := req.Data

	if !i.ledger.ValidAddress(req.WalletAddress) {
		return data, fmt.Errorf("%w: wallet address %q", ErrInvalidInput, req.WalletAddress)
	}
	if req.StudentID <= 0 {
		return data, fmt.Errorf("%w: student id is required", ErrInvalidInput)
	}

	student, err := i.records.GetStudent(ctx, req.StudentID)
	if err != nil {
		return data, fmt.Errorf("%w: student %d: %v", ErrInvalidInput, req.StudentID, err)
	}
	if data.StudentName == "" {
		data.StudentName = student.FullName
	}
	if data.InstitutionalID == "" {
		data.InstitutionalID = student.InstitutionalID
	}
	if data.Program == "" {
		data.Program = student.Program
	}
	if data.IssuedOn == "" {
		data.IssuedOn = i.now().UTC().Format(issuanceDateLayout)
	}

	if data.StudentName == "" || data.InstitutionalID == "" || data.Program == "" {
		return data, fmt.Errorf("%w: student name, institutional id and program are required", ErrInvalidInput)
	}
	return data, nil
}

func (i *Issuer) fail(ctx context.Context, credentialID int64, requestID, wallet, detail string, logger *zap.Logger) {
	if err := i.records.MarkCredentialFailed(ctx, credentialID, detail); err != nil {
		logger.Error("failed to mark credential record as errored", zap.Error(err))
	}
	i.auditEvent(requestID, wallet, model.PhaseFailed, "", nil, detail)
}

func (i *Issuer) auditEvent(requestID, wallet string, phase model.AuditPhase, txHash string, tokenID *uint64, detail string) {
	event := model.AuditEvent{
		RequestID:     requestID,
		Network:       i.network,
		WalletAddress: wallet,
		Phase:         phase,
		TxHash:        txHash,
		Detail:        detail,
		OccurredAt:    i.now().UTC(),
	}
	if tokenID != nil {
		event.TokenID = *tokenID
		event.HasTokenID = true
	}
	i.audit.Record(event)
}

// buildMetadata assembles the NFT metadata document in the institutional
// format readers of previously issued credentials expect.
func buildMetadata(data model.CredentialData) map[string]any {
	return map[string]any{
		"name":        fmt.Sprintf("Credencial para %s", data.StudentName),
		"description": fmt.Sprintf("Credencial digital emitida por la institución para el estudiante con ID %s.", data.InstitutionalID),
		"image":       data.ImageURI,
		"attributes": []any{
			map[string]any{"trait_type": "ID Estudiante", "value": data.InstitutionalID},
			map[string]any{"trait_type": "Programa", "value": data.Program},
			map[string]any{"trait_type": "Fecha Emision", "value": data.IssuedOn},
		},
	}
}

type noopAudit struct{}

func (noopAudit) Record(model.AuditEvent) {}
