// Package transport exposes the HTTP API for issuing and verifying
// credentials.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/registrarlabs/credchain-backend/internal/credential"
	"github.com/registrarlabs/credchain-backend/internal/ethereum"
	"github.com/registrarlabs/credchain-backend/internal/ipfs"
	"github.com/registrarlabs/credchain-backend/internal/model"
	"github.com/registrarlabs/credchain-backend/internal/repository/postgres"
	"go.uber.org/zap"
)

type (
	// Issuer is the issuance workflow entry point.
	Issuer interface {
		Issue(ctx context.Context, req credential.IssueRequest) (*model.IssueResult, error)
		Revoke(ctx context.Context, credentialID int64) (*model.IssueResult, error)
	}

	// Verifier is the verification workflow entry point.
	Verifier interface {
		VerifyByID(ctx context.Context, tokenID uint64) model.VerificationRecord
		VerifyByWallet(ctx context.Context, wallet string) ([]model.VerificationRecord, error)
	}
)

// Handler serves the credential HTTP API.
type Handler struct {
	issuer     Issuer
	verifier   Verifier
	gatewayURL string
	logger     *zap.Logger
}

// NewHandler returns a Handler. gatewayURL is the public IPFS gateway base
// used to expand ipfs:// image pointers in verification responses; empty
// disables the expansion.
func NewHandler(issuer Issuer, verifier Verifier, gatewayURL string, logger *zap.Logger) *Handler {
	return &Handler{
		issuer:     issuer,
		verifier:   verifier,
		gatewayURL: gatewayURL,
		logger:     logger.Named("http"),
	}
}

// Routes mounts the API routes on a chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", h.health)
	r.Route("/api/credentials", func(r chi.Router) {
		r.Post("/issue", h.issue)
		r.Post("/{credentialID}/revoke", h.revoke)
		r.Get("/verify/{tokenID}", h.verifyByID)
		r.Get("/wallet/{address}", h.verifyByWallet)
	})
	return r
}

type issueRequest struct {
	StudentID     int64                `json:"student_id"`
	WalletAddress string               `json:"wallet_address"`
	Data          model.CredentialData `json:"credential_data"`
}

func (h *Handler) issue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.issuer.Issue(r.Context(), credential.IssueRequest{
		StudentID:     req.StudentID,
		WalletAddress: req.WalletAddress,
		Data:          req.Data,
	})
	if err != nil {
		h.logger.Warn("issuance failed",
			zap.String("wallet", req.WalletAddress),
			zap.Int64("student_id", req.StudentID),
			zap.Error(err))
		h.writeError(w, issueStatus(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) revoke(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "credentialID"), 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, http.StatusBadRequest, "invalid credential id")
		return
	}

	result, err := h.issuer.Revoke(r.Context(), id)
	if err != nil {
		h.logger.Warn("revocation failed", zap.Int64("credential_id", id), zap.Error(err))
		switch {
		case errors.Is(err, postgres.ErrNotFound):
			h.writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, credential.ErrNotIssuable):
			h.writeError(w, http.StatusConflict, err.Error())
		default:
			h.writeError(w, issueStatus(err), err.Error())
		}
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) verifyByID(w http.ResponseWriter, r *http.Request) {
	tokenID, err := strconv.ParseUint(chi.URLParam(r, "tokenID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid token id")
		return
	}

	record := h.verifier.VerifyByID(r.Context(), tokenID)
	h.addImageGatewayURL(&record)
	status := http.StatusOK
	if !record.IsValid {
		// A token the chain does not know is not-found, not a fault.
		status = http.StatusNotFound
	}
	h.writeJSON(w, status, record)
}

// addImageGatewayURL adds an image_http_url entry next to an ipfs:// image
// pointer so browser clients can render the credential image without an IPFS
// resolver of their own.
func (h *Handler) addImageGatewayURL(record *model.VerificationRecord) {
	if h.gatewayURL == "" || record.Metadata == nil {
		return
	}
	image, ok := record.Metadata["image"].(string)
	if !ok || !strings.HasPrefix(image, "ipfs://") {
		return
	}
	cid := strings.TrimPrefix(image, "ipfs://")
	record.Metadata["image_http_url"] = strings.TrimRight(h.gatewayURL, "/") + "/" + cid
}

type walletResponse struct {
	WalletAddress string                     `json:"wallet_address"`
	Credentials   []model.VerificationRecord `json:"credentials"`
}

func (h *Handler) verifyByWallet(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	records, err := h.verifier.VerifyByWallet(r.Context(), address)
	if err != nil {
		if errors.Is(err, credential.ErrInvalidInput) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Warn("wallet verification failed", zap.String("address", address), zap.Error(err))
		h.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	for i := range records {
		h.addImageGatewayURL(&records[i])
	}
	h.writeJSON(w, http.StatusOK, walletResponse{WalletAddress: address, Credentials: records})
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func issueStatus(err error) int {
	switch {
	case errors.Is(err, credential.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ipfs.ErrStoreUnavailable),
		errors.Is(err, ipfs.ErrStoreWriteFailed),
		errors.Is(err, ethereum.ErrLedgerUnreachable),
		errors.Is(err, ethereum.ErrContractConfigMissing):
		return http.StatusServiceUnavailable
	case errors.Is(err, ethereum.ErrConfirmationTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
