package ethereum

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
)

func (c *Client) decodeEventLog(name string, lg *types.Log) (*IssuanceEvent, error) {
	ev := c.contractABI.Events[name]
	args := make(map[string]any)

	if len(ev.Inputs.NonIndexed()) > 0 {
		if err := c.contractABI.UnpackIntoMap(args, name, lg.Data); err != nil {
			return nil, fmt.Errorf("unpack %s data: %w", name, err)
		}
	}

	var indexed abi.Arguments
	for _, input := range ev.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(indexed) > 0 {
		if err := abi.ParseTopicsIntoMap(args, indexed, lg.Topics[1:]); err != nil {
			return nil, fmt.Errorf("parse %s topics: %w", name, err)
		}
	}

	tokenID, ok := args["tokenId"].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("event %s has no tokenId argument", name)
	}
	if !tokenID.IsUint64() {
		return nil, fmt.Errorf("event %s tokenId %s overflows uint64", name, tokenID)
	}

	uri, ok := args["tokenURI"].(string)
	if !ok {
		return nil, fmt.Errorf("event %s has no tokenURI argument", name)
	}

	return &IssuanceEvent{TokenID: tokenID.Uint64(), TokenURI: uri}, nil
}
