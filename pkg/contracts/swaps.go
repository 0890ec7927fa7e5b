package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// EtherSwap is a handle on the swap contract for the chain's native asset.
type EtherSwap struct {
	*Contract
}

// EtherSwapLockup is a decoded Lockup event of EtherSwap.
type EtherSwapLockup struct {
	PreimageHash  [32]byte
	Amount        *big.Int
	ClaimAddress  common.Address
	RefundAddress common.Address
	Timelock      *big.Int
	Raw           types.Log
}

// Version returns the contract version.
func (e *EtherSwap) Version(opts *bind.CallOpts) (uint8, error) {
	return callSingle[uint8](e.Contract, opts, "version")
}

// Swaps reports whether a swap with the given hash of values is locked.
func (e *EtherSwap) Swaps(opts *bind.CallOpts, hash [32]byte) (bool, error) {
	return callSingle[bool](e.Contract, opts, "swaps", hash)
}

// FilterLockups returns the Lockup events since fromBlock.
func (e *EtherSwap) FilterLockups(ctx context.Context, fromBlock uint64) ([]*EtherSwapLockup, error) {
	return filterEvents(ctx, e.Contract, "Lockup", fromBlock, func(ev *EtherSwapLockup, log types.Log) {
		ev.Raw = log
	})
}

// ERC20Swap is a handle on the swap contract for tokens.
type ERC20Swap struct {
	*Contract
}

// ERC20SwapLockup is a decoded Lockup event of ERC20Swap.
type ERC20SwapLockup struct {
	PreimageHash  [32]byte
	Amount        *big.Int
	TokenAddress  common.Address
	ClaimAddress  common.Address
	RefundAddress common.Address
	Timelock      *big.Int
	Raw           types.Log
}

// Version returns the contract version.
func (e *ERC20Swap) Version(opts *bind.CallOpts) (uint8, error) {
	return callSingle[uint8](e.Contract, opts, "version")
}

// Swaps reports whether a swap with the given hash of values is locked.
func (e *ERC20Swap) Swaps(opts *bind.CallOpts, hash [32]byte) (bool, error) {
	return callSingle[bool](e.Contract, opts, "swaps", hash)
}

// FilterLockups returns the Lockup events since fromBlock.
func (e *ERC20Swap) FilterLockups(ctx context.Context, fromBlock uint64) ([]*ERC20SwapLockup, error) {
	return filterEvents(ctx, e.Contract, "Lockup", fromBlock, func(ev *ERC20SwapLockup, log types.Log) {
		ev.Raw = log
	})
}

// Token is a handle on an ERC20 token.
type Token struct {
	*Contract
}

func (t *Token) Name(opts *bind.CallOpts) (string, error) {
	return callSingle[string](t.Contract, opts, "name")
}

func (t *Token) Symbol(opts *bind.CallOpts) (string, error) {
	return callSingle[string](t.Contract, opts, "symbol")
}

func (t *Token) Decimals(opts *bind.CallOpts) (uint8, error) {
	return callSingle[uint8](t.Contract, opts, "decimals")
}

func (t *Token) BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error) {
	return callSingle[*big.Int](t.Contract, opts, "balanceOf", account)
}
