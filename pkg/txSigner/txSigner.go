// Package txSigner provides Ethereum transaction signing for the Boltz EVM
// tooling. A signer can be backed by a key derived from the local wallet seed
// or by a key held in AWS KMS; callers only see ITransactionSigner.
package txSigner

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// ITransactionSigner defines the interface for signing Ethereum transactions.
// Implementations produce transaction options for go-ethereum contract
// bindings, which is how contract handles submit through a signer.
type ITransactionSigner interface {
	// GetTransactOpts returns bind.TransactOpts that sign and send.
	//
	// Parameters:
	//   - ctx: Context for the operation
	//   - chainID: The chain ID for the target blockchain
	//
	// Returns:
	//   - *bind.TransactOpts: Configured transaction options for the signer
	//   - error: An error if transaction options cannot be created
	GetTransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error)

	// GetNoSendTransactOpts is like GetTransactOpts but the binding only signs
	// and returns the transaction without broadcasting it.
	GetNoSendTransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error)

	// GetAddress returns the Ethereum address associated with this signer.
	// This address will be used as the 'from' field in transactions.
	GetAddress() (common.Address, error)
}

func noSend(opts *bind.TransactOpts, err error) (*bind.TransactOpts, error) {
	if err != nil {
		return nil, err
	}
	opts.NoSend = true
	return opts, nil
}
