package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	geth "github.com/ethereum/go-ethereum"
)

// SubmitIssuance mints a credential token to wallet with the given content
// pointer as its token URI. It blocks until the transaction is mined or the
// confirmation timeout elapses. A mined-but-reverted transaction is reported
// as *TransactionRevertedError and is never retried here: the nonce is spent
// and a blind resubmission would double-mint.
func (c *Client) SubmitIssuance(ctx context.Context, wallet, contentPointer string) (res *SubmittedTx, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit_issuance", err, started)
	}()

	if !common.IsHexAddress(wallet) {
		return nil, fmt.Errorf("invalid wallet address %q", wallet)
	}

	data, err := c.contractABI.Pack(issueFunction, common.HexToAddress(wallet), contentPointer)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", issueFunction, err)
	}
	return c.submit(ctx, issueFunction, data)
}

// SubmitRevocation revokes the token on chain. Same confirmation semantics
// as SubmitIssuance.
func (c *Client) SubmitRevocation(ctx context.Context, tokenID uint64) (res *SubmittedTx, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit_revocation", err, started)
	}()

	data, err := c.contractABI.Pack(revokeFunction, new(big.Int).SetUint64(tokenID))
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", revokeFunction, err)
	}
	return c.submit(ctx, revokeFunction, data)
}

func (c *Client) submit(ctx context.Context, op string, data []byte) (*SubmittedTx, error) {
	signed, err := c.signNext(ctx, data)
	if err != nil {
		return nil, err
	}

	hash := signed.Hash()
	c.logger.Info("transaction submitted",
		zap.String("op", op),
		zap.String("tx_hash", hash.Hex()),
		zap.Uint64("nonce", signed.Nonce()),
	)

	receipt, err := c.waitMined(ctx, hash)
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, &TransactionRevertedError{TxHash: hash}
	}

	c.logger.Info("transaction confirmed",
		zap.String("op", op),
		zap.String("tx_hash", hash.Hex()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()),
	)
	return &SubmittedTx{TxHash: hash, Receipt: receipt}, nil
}

// signNext runs the nonce-critical section: compute nonce, build, sign and
// broadcast one transaction. Concurrent submissions from the same signer are
// serialized here so they cannot race for a nonce; the confirmation wait
// happens outside the lock.
func (c *Client) signNext(ctx context.Context, data []byte) (*types.Transaction, error) {
	c.nonceMu.Lock()
	defer c.nonceMu.Unlock()

	nonce, err := c.node.PendingNonceAt(ctx, c.from)
	if err != nil {
		return nil, fmt.Errorf("pending nonce: %w", err)
	}

	head, err := c.node.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("latest header: %w", err)
	}

	gas, err := c.node.EstimateGas(ctx, geth.CallMsg{
		From: c.from,
		To:   &c.contract,
		Data: data,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}

	var tx *types.Transaction
	if head.BaseFee != nil {
		tip, tipErr := c.node.SuggestGasTipCap(ctx)
		if tipErr != nil {
			return nil, fmt.Errorf("suggest gas tip: %w", tipErr)
		}
		feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
		tx = types.NewTx(&types.DynamicFeeTx{
			ChainID:   c.chainID,
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: feeCap,
			Gas:       gas,
			To:        &c.contract,
			Data:      data,
		})
	} else {
		// No base fee in the head block means the chain predates dynamic
		// fees and will reject a DynamicFeeTx. Price the old way instead.
		gasPrice, priceErr := c.node.SuggestGasPrice(ctx)
		if priceErr != nil {
			return nil, fmt.Errorf("suggest gas price: %w", priceErr)
		}
		tx = types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: gasPrice,
			Gas:      gas,
			To:       &c.contract,
			Data:     data,
		})
	}
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	if err := c.node.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}
	return signed, nil
}

// waitMined polls for the receipt until the transaction is mined or the
// confirmation timeout elapses. Transient receipt lookup errors are retried;
// a timeout leaves the transaction in flight for out-of-band reconciliation.
func (c *Client) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	deadline := time.Now().Add(c.confirmationTimeout)

	for {
		receipt, err := c.node.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, geth.NotFound) {
			c.logger.Warn("receipt lookup failed, retrying",
				zap.String("tx_hash", hash.Hex()), zap.Error(err))
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: tx %s after %s", ErrConfirmationTimeout, hash.Hex(), c.confirmationTimeout)
		}
		if err := c.sleep(ctx, c.pollInterval); err != nil {
			return nil, err
		}
	}
}

// DecodeIssuanceEvent extracts the mint event from a confirmed receipt. The
// second return is false when no matching event is present; a confirmed
// transaction without a decodable event is still a successful issuance.
func (c *Client) DecodeIssuanceEvent(receipt *types.Receipt) (*IssuanceEvent, bool) {
	ev, ok := c.contractABI.Events[issuanceEvent]
	if !ok {
		return nil, false
	}

	for _, lg := range receipt.Logs {
		if lg.Address != c.contract || len(lg.Topics) == 0 || lg.Topics[0] != ev.ID {
			continue
		}

		decoded, err := c.decodeEventLog(ev.Name, lg)
		if err != nil {
			c.logger.Warn("issuance event log could not be decoded",
				zap.String("tx_hash", receipt.TxHash.Hex()), zap.Error(err))
			continue
		}
		return decoded, true
	}
	return nil, false
}
