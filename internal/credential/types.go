// Package credential contains the issuance and verification workflows.
package credential

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/registrarlabs/credchain-backend/internal/ethereum"
	"github.com/registrarlabs/credchain-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Ledger is the chain surface the orchestrators depend on.
	Ledger interface {
		ValidAddress(s string) bool
		SubmitIssuance(ctx context.Context, wallet, contentPointer string) (*ethereum.SubmittedTx, error)
		SubmitRevocation(ctx context.Context, tokenID uint64) (*ethereum.SubmittedTx, error)
		DecodeIssuanceEvent(receipt *types.Receipt) (*ethereum.IssuanceEvent, bool)
		OwnerOf(ctx context.Context, tokenID uint64) (string, error)
		TokenURI(ctx context.Context, tokenID uint64) (string, error)
		BalanceOf(ctx context.Context, wallet string) (uint64, error)
		TokenOfOwnerByIndex(ctx context.Context, wallet string, index uint64) (uint64, error)
	}

	// ContentStore uploads and fetches metadata documents.
	ContentStore interface {
		Upload(ctx context.Context, doc map[string]any) (string, error)
		Fetch(ctx context.Context, cid string) (map[string]any, error)
	}

	// Records is the durable credential record collaborator.
	Records interface {
		GetStudent(ctx context.Context, id int64) (*model.Student, error)
		CreateCredential(ctx context.Context, studentID int64, wallet string) (*model.CredentialRecord, error)
		GetCredential(ctx context.Context, id int64) (*model.CredentialRecord, error)
		MarkCredentialIssued(ctx context.Context, id int64, tokenID *uint64, txHash, cid string, metadata map[string]any) error
		MarkCredentialFailed(ctx context.Context, id int64, detail string) error
		MarkCredentialRevoked(ctx context.Context, id int64, txHash string) error
	}

	// AuditTrail accepts fire-and-forget workflow events. Implementations
	// must never block the issuance path.
	AuditTrail interface {
		Record(event model.AuditEvent)
	}

	// IssuerMetrics records issuance workflow outcomes.
	IssuerMetrics interface {
		ObserveIssue(err error, started time.Time)
		ObserveRevoke(err error, started time.Time)
	}

	// VerifierMetrics records verification workflow outcomes.
	VerifierMetrics interface {
		ObserveVerifyByID(valid bool, started time.Time)
		ObserveVerifyByWallet(err error, results int, started time.Time)
	}
)
