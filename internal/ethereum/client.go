// Package ethereum is the single point of contact with the blockchain node
// and the deployed credential contract.
package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/registrarlabs/credchain-backend/internal/clock"
	"github.com/registrarlabs/credchain-backend/internal/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	geth "github.com/ethereum/go-ethereum"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const (
	issueFunction  = "emitirCredencial"
	revokeFunction = "revocarCredencial"
	issuanceEvent  = "CredencialEmitida"

	defaultConfirmationTimeout = 2 * time.Minute
	defaultPollInterval        = 2 * time.Second
	defaultReadRPS             = 20
)

var (
	// ErrLedgerUnreachable indicates the RPC endpoint did not respond.
	ErrLedgerUnreachable = errors.New("ledger rpc endpoint unreachable")
	// ErrConfirmationTimeout indicates a submitted transaction was neither
	// mined nor reverted within the configured wait. The transaction is
	// still in flight and must be reconciled out of band.
	ErrConfirmationTimeout = errors.New("transaction confirmation timed out")
)

// TransactionRevertedError reports a mined transaction with failure status.
// The nonce is consumed; callers must not blindly retry.
type TransactionRevertedError struct {
	TxHash common.Hash
}

func (e *TransactionRevertedError) Error() string {
	return fmt.Sprintf("transaction %s reverted", e.TxHash.Hex())
}

// LedgerCallError reports a failed read-only contract call, including
// contract-level reverts such as querying a nonexistent token.
type LedgerCallError struct {
	Op  string
	Err error
}

func (e *LedgerCallError) Error() string {
	return fmt.Sprintf("ledger call %s: %v", e.Op, e.Err)
}

func (e *LedgerCallError) Unwrap() error { return e.Err }

type (
	// NodeClient is the subset of the Ethereum RPC surface the ledger
	// client depends on. *ethclient.Client satisfies it.
	NodeClient interface {
		ChainID(ctx context.Context) (*big.Int, error)
		PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
		SuggestGasTipCap(ctx context.Context) (*big.Int, error)
		SuggestGasPrice(ctx context.Context) (*big.Int, error)
		HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
		EstimateGas(ctx context.Context, msg geth.CallMsg) (uint64, error)
		SendTransaction(ctx context.Context, tx *types.Transaction) error
		TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
		CallContract(ctx context.Context, msg geth.CallMsg, blockNumber *big.Int) ([]byte, error)
	}

	// Metrics records outcomes of ledger operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// SubmittedTx is the result of a confirmed contract submission.
type SubmittedTx struct {
	TxHash  common.Hash
	Receipt *types.Receipt
}

// IssuanceEvent carries the decoded mint event of a confirmed issuance.
type IssuanceEvent struct {
	TokenID  uint64
	TokenURI string
}

// Client wraps the node connection and typed calls to the credential
// contract. It is safe for concurrent use; nonce acquisition for submissions
// is serialized internally.
type Client struct {
	node        NodeClient
	contractABI abi.ABI
	contract    common.Address
	key         *ecdsa.PrivateKey
	from        common.Address
	chainID     *big.Int
	network     model.Network

	confirmationTimeout time.Duration
	pollInterval        time.Duration

	// nonceMu guards compute nonce -> sign -> send. It is never held
	// across the confirmation wait.
	nonceMu     sync.Mutex
	readLimiter ratelimit.Limiter
	sleep       func(context.Context, time.Duration) error

	metrics Metrics
	logger  *zap.Logger
}

// NewClient dials the RPC endpoint, probes it, and prepares the signer and
// contract binding from cfg. It fails fast on an unreachable endpoint or
// missing contract configuration.
func NewClient(ctx context.Context, cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if cfg.ContractAddress == "" || cfg.ContractABI == "" {
		return nil, ErrContractConfigMissing
	}

	node, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrLedgerUnreachable, cfg.RPCURL, err)
	}

	client, err := newClient(ctx, node, cfg, metrics, logger)
	if err != nil {
		node.Close()
		return nil, err
	}
	return client, nil
}

func newClient(ctx context.Context, node NodeClient, cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	chainID, err := node.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: chain id probe: %v", ErrLedgerUnreachable, err)
	}
	if cfg.ChainID != 0 && chainID.Int64() != cfg.ChainID {
		return nil, fmt.Errorf("node reports chain id %d, configured %d", chainID.Int64(), cfg.ChainID)
	}

	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("%w: invalid contract address %q", ErrContractConfigMissing, cfg.ContractAddress)
	}

	contractABI, err := abi.JSON(strings.NewReader(cfg.ContractABI))
	if err != nil {
		return nil, fmt.Errorf("%w: parse abi: %v", ErrContractConfigMissing, err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse signer key: %w", err)
	}

	timeout := cfg.ConfirmationTimeout
	if timeout <= 0 {
		timeout = defaultConfirmationTimeout
	}
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}
	rps := cfg.ReadRPS
	if rps <= 0 {
		rps = defaultReadRPS
	}

	from := crypto.PubkeyToAddress(key.PublicKey)
	logger.Info("ledger client ready",
		zap.String("network", string(cfg.Network)),
		zap.String("contract", cfg.ContractAddress),
		zap.String("signer", from.Hex()),
		zap.Int64("chain_id", chainID.Int64()),
	)

	return &Client{
		node:                node,
		contractABI:         contractABI,
		contract:            common.HexToAddress(cfg.ContractAddress),
		key:                 key,
		from:                from,
		chainID:             chainID,
		network:             cfg.Network,
		confirmationTimeout: timeout,
		pollInterval:        poll,
		readLimiter:         ratelimit.New(rps),
		sleep:               clock.SleepWithContext,
		metrics:             metrics,
		logger:              logger,
	}, nil
}

// ValidAddress reports whether s is a well-formed hex address. It performs
// no network call.
func ValidAddress(s string) bool {
	return common.IsHexAddress(s)
}

// ValidAddress reports whether s is a well-formed hex address.
func (c *Client) ValidAddress(s string) bool {
	return ValidAddress(s)
}

// Signer returns the service signing address.
func (c *Client) Signer() string {
	return c.from.Hex()
}
