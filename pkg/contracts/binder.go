package contracts

import (
	"errors"
	"fmt"

	"github.com/BoltzExchange/boltz-evm/pkg/config"
	"github.com/BoltzExchange/boltz-evm/pkg/util"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	// ErrMissingAddress is returned when a required address cannot be
	// resolved from a chain's configuration
	ErrMissingAddress = errors.New("missing contract address")
	// ErrNoTokenContract is returned when no token of a chain has a contract address
	ErrNoTokenContract = fmt.Errorf("no token contract configured: %w", ErrMissingAddress)
)

// Contracts is the set of handles bound for one chain.
type Contracts struct {
	Token     *Token
	EtherSwap *EtherSwap
	ERC20Swap *ERC20Swap
}

// Binder builds Contracts from the chain sections of the configuration.
type Binder struct {
	resolver config.IConfigResolver
	logger   *zap.Logger
}

// NewBinder creates a Binder reading addresses through resolver.
func NewBinder(resolver config.IConfigResolver, logger *zap.Logger) *Binder {
	return &Binder{
		resolver: resolver,
		logger:   logger,
	}
}

// GetContracts resolves the configuration of chain and binds its swap
// contracts and first token contract to signer.
//
// Parameters:
//   - chain: The chain identifier
//   - signer: The identity the handles transact with
//
// Returns:
//   - Contracts: Fresh handles, never shared with other calls
//   - error: config.ErrConfigurationMissing if the chain is not configured,
//     ErrMissingAddress / ErrNoTokenContract if an address cannot be resolved
func (b *Binder) GetContracts(chain config.Chain, signer Signer) (Contracts, error) {
	section, err := b.resolver.ChainConfig(chain)
	if err != nil {
		return Contracts{}, err
	}

	contracts, err := BindContracts(section, signer)
	if err != nil {
		return Contracts{}, fmt.Errorf("%s: %w", chain, err)
	}

	b.logger.Sugar().Debugw("Bound contracts",
		zap.String("chain", string(chain)),
		zap.String("etherSwap", contracts.EtherSwap.Address().Hex()),
		zap.String("erc20Swap", contracts.ERC20Swap.Address().Hex()),
		zap.String("token", contracts.Token.Address().Hex()),
	)
	return contracts, nil
}

// BindContracts binds the handles described by section. The swap contracts
// come from the first contracts record; the token is the first token with a
// contract address.
func BindContracts(section *config.ChainConfig, signer Signer) (Contracts, error) {
	if len(section.Contracts) == 0 || section.Contracts[0] == nil {
		return Contracts{}, fmt.Errorf("%w: no swap contracts configured", ErrMissingAddress)
	}
	deployment := section.Contracts[0]

	etherSwapAddress, err := parseAddress("etherSwap", deployment.EtherSwap)
	if err != nil {
		return Contracts{}, err
	}
	erc20SwapAddress, err := parseAddress("erc20Swap", deployment.ERC20Swap)
	if err != nil {
		return Contracts{}, err
	}

	token, found := util.Find(section.Tokens, func(t *config.TokenConfig) bool {
		return t != nil && t.HasContract()
	})
	if !found {
		return Contracts{}, ErrNoTokenContract
	}
	tokenAddress, err := parseAddress(fmt.Sprintf("%s contractAddress", token.Symbol), token.ContractAddress)
	if err != nil {
		return Contracts{}, err
	}

	etherSwapAbi, err := EtherSwapABI()
	if err != nil {
		return Contracts{}, err
	}
	erc20SwapAbi, err := ERC20SwapABI()
	if err != nil {
		return Contracts{}, err
	}
	erc20Abi, err := ERC20ABI()
	if err != nil {
		return Contracts{}, err
	}

	return Contracts{
		Token:     &Token{NewContract(tokenAddress, erc20Abi, signer)},
		EtherSwap: &EtherSwap{NewContract(etherSwapAddress, etherSwapAbi, signer)},
		ERC20Swap: &ERC20Swap{NewContract(erc20SwapAddress, erc20SwapAbi, signer)},
	}, nil
}

func parseAddress(field, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%w: invalid %s %q", ErrMissingAddress, field, value)
	}
	return common.HexToAddress(value), nil
}
