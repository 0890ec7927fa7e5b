// Package contracts binds the Boltz swap contracts and the configured token
// of a chain to a signer.
//
// Binding is purely in-memory: handles only talk to the network when one of
// their methods is invoked, through the backend of the signer they were built with.
package contracts

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/BoltzExchange/boltz-evm/pkg/txSigner"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrNotConnected is returned when a handle bound with an unconnected
	// signer is asked to query or transact
	ErrNotConnected = errors.New("contract signer is not connected to a provider")
)

// Signer is the identity handles are bound to. Backend returns nil when the
// signer has no provider; *wallet.Wallet implements it.
type Signer interface {
	txSigner.ITransactionSigner
	Backend() bind.ContractBackend
}

// Contract pairs an address and an interface descriptor with a signer.
type Contract struct {
	address common.Address
	abi     *abi.ABI
	signer  Signer
	backend bind.ContractBackend
	bound   *bind.BoundContract
}

// NewContract builds a handle. It performs no network I/O.
func NewContract(address common.Address, contractAbi *abi.ABI, signer Signer) *Contract {
	backend := signer.Backend()
	return &Contract{
		address: address,
		abi:     contractAbi,
		signer:  signer,
		backend: backend,
		bound:   bind.NewBoundContract(address, *contractAbi, backend, backend, backend),
	}
}

// Address returns the on-chain address the handle is bound to.
func (c *Contract) Address() common.Address {
	return c.address
}

// ABI returns the interface descriptor of the handle.
func (c *Contract) ABI() *abi.ABI {
	return c.abi
}

// Signer returns the signer the handle was bound with.
func (c *Contract) Signer() Signer {
	return c.signer
}

// Call invokes a constant method and returns its unpacked outputs.
func (c *Contract) Call(opts *bind.CallOpts, method string, params ...interface{}) ([]interface{}, error) {
	if c.backend == nil {
		return nil, ErrNotConnected
	}
	var out []interface{}
	if err := c.bound.Call(opts, &out, method, params...); err != nil {
		return nil, fmt.Errorf("failed to call %s on %s: %w", method, c.address.Hex(), err)
	}
	return out, nil
}

// Transact invokes a state changing method with the given options.
func (c *Contract) Transact(opts *bind.TransactOpts, method string, params ...interface{}) (*types.Transaction, error) {
	if c.backend == nil {
		return nil, ErrNotConnected
	}
	return c.bound.Transact(opts, method, params...)
}

// FilterLogs returns the logs of event emitted by the contract from fromBlock
// up to toBlock, or up to the latest block when toBlock is nil.
func (c *Contract) FilterLogs(ctx context.Context, event string, fromBlock uint64, toBlock *uint64) ([]types.Log, error) {
	if c.backend == nil {
		return nil, ErrNotConnected
	}
	ev, ok := c.abi.Events[event]
	if !ok {
		return nil, fmt.Errorf("event %s not found in ABI", event)
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []common.Address{c.address},
		Topics:    [][]common.Hash{{ev.ID}},
	}
	if toBlock != nil {
		query.ToBlock = new(big.Int).SetUint64(*toBlock)
	}

	logs, err := c.backend.FilterLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to filter %s logs of %s: %w", event, c.address.Hex(), err)
	}
	return logs, nil
}

// UnpackLog decodes a log of event into out.
func (c *Contract) UnpackLog(out interface{}, event string, log types.Log) error {
	return c.bound.UnpackLog(out, event, log)
}

func callSingle[T any](c *Contract, opts *bind.CallOpts, method string, params ...interface{}) (T, error) {
	var zero T
	out, err := c.Call(opts, method, params...)
	if err != nil {
		return zero, err
	}
	if len(out) == 0 {
		return zero, fmt.Errorf("%s returned no values", method)
	}
	return *abi.ConvertType(out[0], new(T)).(*T), nil
}

func filterEvents[T any](ctx context.Context, c *Contract, event string, fromBlock uint64, setRaw func(*T, types.Log)) ([]*T, error) {
	logs, err := c.FilterLogs(ctx, event, fromBlock, nil)
	if err != nil {
		return nil, err
	}

	events := make([]*T, 0, len(logs))
	for _, log := range logs {
		ev := new(T)
		if err := c.UnpackLog(ev, event, log); err != nil {
			return nil, fmt.Errorf("failed to unpack %s log %s:%d: %w", event, log.TxHash.Hex(), log.Index, err)
		}
		setRaw(ev, log)
		events = append(events, ev)
	}
	return events, nil
}
