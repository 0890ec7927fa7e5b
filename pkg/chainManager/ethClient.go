package chainManager

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
)

// BlockNumberReader is the chain-query capability needed to pick log query ranges.
type BlockNumberReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// EthClientInterface defines the methods the Boltz EVM tooling uses on a node.
// It is satisfied by *ethclient.Client and allows for mocking.
type EthClientInterface interface {
	BlockNumberReader

	ChainID(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// Contract binding support (required for go-ethereum's bind package)
	bind.ContractBackend
	bind.DeployBackend
}
