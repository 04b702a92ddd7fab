package wallet_manager

import (
	"os"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
)

const (
	envRPCEndpoint           = "SOLANA_RPC_ENDPOINT"
	envProgramID             = "CORE_AUCTIONS_PROGRAM_ID"
	envNativeMint            = "NATIVE_MINT"
	envCommitment            = "SOLANA_COMMITMENT"
	envEstimateComputeBudget = "ESTIMATE_COMPUTE_BUDGET"
)

var ErrInvalidConfig = errors.New("invalid config")

func DefaultConfig(programID solana.PublicKey) Config {
	return Config{
		RPCEndpoint: rpc.DevNet_RPC,
		ProgramID:   programID,
		NativeMint:  solana.SolMint,
		Commitment:  rpc.CommitmentConfirmed,
	}
}

// ConfigFromEnv reads the config from the environment. Only the program id
// is required.
func ConfigFromEnv() (Config, error) {
	programIDString := os.Getenv(envProgramID)
	if programIDString == "" {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "%s is not set", envProgramID)
	}
	programID, err := solana.PublicKeyFromBase58(programIDString)
	if err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "%s: %s", envProgramID, err.Error())
	}
	config := DefaultConfig(programID)
	if endpoint := os.Getenv(envRPCEndpoint); endpoint != "" {
		config.RPCEndpoint = endpoint
	}
	if mint := os.Getenv(envNativeMint); mint != "" {
		config.NativeMint, err = solana.PublicKeyFromBase58(mint)
		if err != nil {
			return Config{}, errors.Wrapf(ErrInvalidConfig, "%s: %s", envNativeMint, err.Error())
		}
	}
	if commitment := os.Getenv(envCommitment); commitment != "" {
		config.Commitment = rpc.CommitmentType(commitment)
	}
	if estimate := os.Getenv(envEstimateComputeBudget); estimate != "" {
		config.EstimateComputeBudget, err = strconv.ParseBool(estimate)
		if err != nil {
			return Config{}, errors.Wrapf(ErrInvalidConfig, "%s: %s", envEstimateComputeBudget, err.Error())
		}
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.RPCEndpoint == "" {
		return errors.Wrap(ErrInvalidConfig, "rpc endpoint is empty")
	}
	if c.ProgramID.IsZero() {
		return errors.Wrap(ErrInvalidConfig, "program id is not set")
	}
	if c.NativeMint.IsZero() {
		return errors.Wrap(ErrInvalidConfig, "native mint is not set")
	}
	switch c.Commitment {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown commitment %q", c.Commitment)
	}
	return nil
}
