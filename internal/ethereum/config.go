package ethereum

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/registrarlabs/credchain-backend/internal/model"
)

// ErrContractConfigMissing indicates the contract address or ABI could not be
// loaded. The service refuses to start without them instead of silently
// disabling chain features.
var ErrContractConfigMissing = errors.New("contract address or abi not configured")

const (
	addressFileName  = "contract-address.json"
	artifactFileName = "CredencialAlumno.json"
	contractKey      = "CredencialAlumno"
)

// Config carries everything the ledger client needs. It is passed explicitly
// into NewClient; there is no ambient global configuration.
type Config struct {
	RPCURL              string
	PrivateKeyHex       string
	ContractAddress     string
	ContractABI         string
	ChainID             int64
	Network             model.Network
	ConfirmationTimeout time.Duration
	PollInterval        time.Duration
	ReadRPS             int
}

// LoadContractArtifacts reads the deployment artifacts the contract deploy
// script writes next to the service: contract-address.json with the deployed
// address and the full hardhat artifact containing the ABI.
func LoadContractArtifacts(dir string) (address string, abiJSON string, err error) {
	rawAddr, err := os.ReadFile(filepath.Join(dir, addressFileName))
	if err != nil {
		return "", "", fmt.Errorf("%w: read %s: %v", ErrContractConfigMissing, addressFileName, err)
	}

	var addresses map[string]string
	if err := json.Unmarshal(rawAddr, &addresses); err != nil {
		return "", "", fmt.Errorf("%w: parse %s: %v", ErrContractConfigMissing, addressFileName, err)
	}
	address = addresses[contractKey]
	if address == "" {
		return "", "", fmt.Errorf("%w: %s has no %q entry", ErrContractConfigMissing, addressFileName, contractKey)
	}

	rawArtifact, err := os.ReadFile(filepath.Join(dir, artifactFileName))
	if err != nil {
		return "", "", fmt.Errorf("%w: read %s: %v", ErrContractConfigMissing, artifactFileName, err)
	}

	var artifact struct {
		ABI json.RawMessage `json:"abi"`
	}
	if err := json.Unmarshal(rawArtifact, &artifact); err != nil {
		return "", "", fmt.Errorf("%w: parse %s: %v", ErrContractConfigMissing, artifactFileName, err)
	}
	if len(artifact.ABI) == 0 {
		return "", "", fmt.Errorf("%w: %s has no abi", ErrContractConfigMissing, artifactFileName)
	}

	return address, string(artifact.ABI), nil
}
