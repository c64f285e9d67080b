package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	geth "github.com/ethereum/go-ethereum"
)

// OwnerOf returns the owner address of tokenID. A nonexistent token surfaces
// as *LedgerCallError.
func (c *Client) OwnerOf(ctx context.Context, tokenID uint64) (owner string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("owner_of", err, started)
	}()

	out, err := c.call(ctx, "ownerOf", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return "", err
	}
	addr, ok := out[0].(common.Address)
	if !ok {
		return "", &LedgerCallError{Op: "ownerOf", Err: fmt.Errorf("unexpected return type %T", out[0])}
	}
	return addr.Hex(), nil
}

// TokenURI returns the on-chain content pointer of tokenID.
func (c *Client) TokenURI(ctx context.Context, tokenID uint64) (uri string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("token_uri", err, started)
	}()

	out, err := c.call(ctx, "tokenURI", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return "", err
	}
	uri, ok := out[0].(string)
	if !ok {
		return "", &LedgerCallError{Op: "tokenURI", Err: fmt.Errorf("unexpected return type %T", out[0])}
	}
	return uri, nil
}

// BalanceOf returns how many credential tokens wallet holds.
func (c *Client) BalanceOf(ctx context.Context, wallet string) (balance uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("balance_of", err, started)
	}()

	if !common.IsHexAddress(wallet) {
		return 0, &LedgerCallError{Op: "balanceOf", Err: fmt.Errorf("invalid address %q", wallet)}
	}

	out, err := c.call(ctx, "balanceOf", common.HexToAddress(wallet))
	if err != nil {
		return 0, err
	}
	return uintResult("balanceOf", out)
}

// TokenOfOwnerByIndex resolves the token id at the given enumeration index
// for wallet.
func (c *Client) TokenOfOwnerByIndex(ctx context.Context, wallet string, index uint64) (tokenID uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("token_of_owner_by_index", err, started)
	}()

	if !common.IsHexAddress(wallet) {
		return 0, &LedgerCallError{Op: "tokenOfOwnerByIndex", Err: fmt.Errorf("invalid address %q", wallet)}
	}

	out, err := c.call(ctx, "tokenOfOwnerByIndex", common.HexToAddress(wallet), new(big.Int).SetUint64(index))
	if err != nil {
		return 0, err
	}
	return uintResult("tokenOfOwnerByIndex", out)
}

// call packs and executes one read-only contract call. Reads are paced by the
// client rate limiter and never consume a nonce.
func (c *Client) call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := c.contractABI.Pack(method, args...)
	if err != nil {
		return nil, &LedgerCallError{Op: method, Err: fmt.Errorf("pack: %w", err)}
	}

	c.readLimiter.Take()
	out, err := c.node.CallContract(ctx, geth.CallMsg{To: &c.contract, Data: data}, nil)
	if err != nil {
		return nil, &LedgerCallError{Op: method, Err: err}
	}

	vals, err := c.contractABI.Unpack(method, out)
	if err != nil {
		return nil, &LedgerCallError{Op: method, Err: fmt.Errorf("unpack: %w", err)}
	}
	if len(vals) == 0 {
		return nil, &LedgerCallError{Op: method, Err: fmt.Errorf("empty return data")}
	}
	return vals, nil
}

func uintResult(method string, out []any) (uint64, error) {
	v, ok := out[0].(*big.Int)
	if !ok {
		return 0, &LedgerCallError{Op: method, Err: fmt.Errorf("unexpected return type %T", out[0])}
	}
	if !v.IsUint64() {
		return 0, &LedgerCallError{Op: method, Err: fmt.Errorf("value %s overflows uint64", v)}
	}
	return v.Uint64(), nil
}
