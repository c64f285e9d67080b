package model

import "time"

// Network identifies the Ethereum network the service is wired to.
type Network string

const (
	Mainnet  Network = "mainnet"
	Sepolia  Network = "sepolia"
	Localnet Network = "localnet"
)

// CredentialState is the lifecycle state of a credential record.
type CredentialState string

const (
	// StatePending marks a record created but not yet confirmed on chain.
	StatePending CredentialState = "PENDING"
	// StateIssued marks a record whose mint transaction was confirmed.
	StateIssued CredentialState = "ISSUED"
	// StateRevoked marks a previously issued record that was revoked.
	StateRevoked CredentialState = "REVOKED"
	// StateError marks a record whose issuance failed.
	StateError CredentialState = "ERROR"
)

// Student describes the holder a credential is issued to.
type Student struct {
	ID              int64
	FullName        string
	InstitutionalID string
	Program         string
}

// CredentialRecord is the durable record of one credential issuance.
// TokenID, IssuanceTxHash, MetadataCID and MetadataJSON are only populated
// together on the PENDING -> ISSUED transition; TokenID may stay nil when the
// mint event could not be decoded from a confirmed receipt.
type CredentialRecord struct {
	ID               int64
	TokenID          *uint64
	StudentID        int64
	WalletAddress    string
	IssuanceTxHash   *string
	RevocationTxHash *string
	MetadataJSON     map[string]any
	MetadataCID      string
	State            CredentialState
	ErrorDetail      *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// VerificationRecord is the per-request result of verifying one token.
// It is computed fresh from chain and content-store reads and never persisted.
type VerificationRecord struct {
	TokenID      uint64         `json:"token_id"`
	OwnerAddress string         `json:"owner,omitempty"`
	TokenURI     string         `json:"token_uri_onchain,omitempty"`
	Metadata     map[string]any `json:"metadata"`
	IsValid      bool           `json:"valid"`
	ErrorDetail  string         `json:"error,omitempty"`
}

// IssueResult is the outcome reported to the issuance caller.
type IssueResult struct {
	Success  bool    `json:"success"`
	TxHash   string  `json:"tx_hash,omitempty"`
	TokenID  *uint64 `json:"token_id,omitempty"`
	TokenURI string  `json:"token_uri,omitempty"`
	Message  string  `json:"message,omitempty"`
}

// CredentialData is the caller-supplied payload describing the credential
// to be minted.
type CredentialData struct {
	StudentName     string `json:"student_name"`
	InstitutionalID string `json:"institutional_id"`
	Program         string `json:"program"`
	ImageURI        string `json:"image_uri,omitempty"`
	IssuedOn        string `json:"issued_on,omitempty"`
}

// AuditPhase tags an issuance audit event with the workflow phase that
// produced it.
type AuditPhase string

const (
	PhaseValidated AuditPhase = "validated"
	PhaseUploaded  AuditPhase = "uploaded"
	PhaseSubmitted AuditPhase = "submitted"
	PhaseConfirmed AuditPhase = "confirmed"
	PhaseIssued    AuditPhase = "issued"
	PhaseRevoked   AuditPhase = "revoked"
	PhaseFailed    AuditPhase = "failed"
)

// AuditEvent is one append-only row in the issuance audit trail.
type AuditEvent struct {
	RequestID     string
	Network       Network
	WalletAddress string
	Phase         AuditPhase
	TxHash        string
	TokenID       uint64
	HasTokenID    bool
	Detail        string
	OccurredAt    time.Time
}
